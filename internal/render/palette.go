package render

import (
	"image/color"

	"map-tools/internal/grid"
)

// QuantumColor fills tiles that have not collapsed yet.
var QuantumColor = color.RGBA{R: 54, G: 56, B: 72, A: 255}

var terrainPalette = [...]color.RGBA{
	grid.Ocean:  {R: 36, G: 92, B: 168, A: 255},
	grid.Sand:   {R: 222, G: 200, B: 140, A: 255},
	grid.Grass:  {R: 96, G: 176, B: 72, A: 255},
	grid.Forest: {R: 34, G: 102, B: 52, A: 255},
	grid.Stone:  {R: 128, G: 128, B: 136, A: 255},
}

// TerrainColor returns the swatch for t.
func TerrainColor(t grid.TerrainType) color.RGBA {
	if int(t) < len(terrainPalette) {
		return terrainPalette[t]
	}
	return QuantumColor
}

// TileColor returns the fill for a tile: its terrain swatch when collapsed,
// QuantumColor otherwise.
func TileColor(t grid.Tile) color.RGBA {
	if terrain, ok := t.Terrain(); ok {
		return TerrainColor(terrain)
	}
	return QuantumColor
}

// BrushColor returns the swatch for a brush; the eraser uses QuantumColor.
func BrushColor(b grid.Brush) color.RGBA {
	if b.Erase {
		return QuantumColor
	}
	return TerrainColor(b.Terrain)
}

// HighlightColor returns the outline color for m and whether an outline is
// drawn at all.
func HighlightColor(m grid.HighlightMode) (color.RGBA, bool) {
	switch m {
	case grid.Selected:
		return color.RGBA{R: 255, G: 200, B: 0, A: 255}, true
	case grid.Hovered:
		return color.RGBA{R: 240, G: 240, B: 250, A: 200}, true
	case grid.HoverNeighbors:
		return color.RGBA{R: 160, G: 160, B: 190, A: 140}, true
	default:
		return color.RGBA{}, false
	}
}

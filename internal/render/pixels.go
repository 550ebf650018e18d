package render

import (
	"image/color"

	"map-tools/internal/grid"
)

// fillTileRGBA converts row-major tiles into one RGBA pixel each in buf using
// FillColor. Pixels past the end of tiles are cleared to transparent black.
func fillTileRGBA(buf []byte, tiles []grid.Tile) {
	for i := 0; i*4+3 < len(buf); i++ {
		base := i * 4
		if i >= len(tiles) {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		col := FillColor(tiles[i])
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// blend mixes overlay into base with the given overlay weight.
func blend(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	inv := 1 - overlayWeight
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*overlayWeight + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*overlayWeight + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*overlayWeight + 0.5),
		A: uint8(float64(base.A)*inv + float64(overlay.A)*overlayWeight + 0.5),
	}
}

// FillColor is the on-screen fill of a tile: TileColor, brightened while the
// tile is hovered.
func FillColor(t grid.Tile) color.RGBA {
	base := TileColor(t)
	if t.Highlight() == grid.Hovered {
		return blend(base, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.25)
	}
	return base
}

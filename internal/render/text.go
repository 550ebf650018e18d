package render

import (
	"bufio"
	"io"
	"strings"

	"map-tools/internal/grid"
)

var terrainGlyphs = [...]rune{
	grid.Ocean:  '~',
	grid.Sand:   '.',
	grid.Grass:  '"',
	grid.Forest: '^',
	grid.Stone:  '#',
}

// Glyph returns the one-character label for a tile in text output; '?' while
// quantum.
func Glyph(t grid.Tile) rune {
	if terrain, ok := t.Terrain(); ok && int(terrain) < len(terrainGlyphs) {
		return terrainGlyphs[terrain]
	}
	return '?'
}

// WriteASCII prints the grid row by row. Each tile is bracketed by its
// highlight: [x] selected, (x) hovered, plain otherwise. Hex grids are not
// offset; the header names the layout.
func WriteASCII(w io.Writer, e *grid.Engine) error {
	bw := bufio.NewWriter(w)
	shape := e.Shape()
	bw.WriteString("grid " + shape.String() + "\n")
	cols := e.Columns()
	for row := 0; row < shape.Rows; row++ {
		var line strings.Builder
		for col := 0; col < len(cols); col++ {
			tile := cols[col][row]
			left, right := ' ', ' '
			switch tile.Highlight() {
			case grid.Selected:
				left, right = '[', ']'
			case grid.Hovered:
				left, right = '(', ')'
			}
			line.WriteRune(left)
			line.WriteRune(Glyph(tile))
			line.WriteRune(right)
		}
		bw.WriteString(strings.TrimRight(line.String(), " ") + "\n")
	}
	return bw.Flush()
}

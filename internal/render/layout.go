package render

import (
	"image"

	"map-tools/internal/core"
)

// Layout places tiles on a surface measured in integer units (pixels for the
// GUI, character cells for the terminal). In hex layout every odd column is
// shifted down by half a tile.
type Layout struct {
	Shape  core.Shape
	TileW  int
	TileH  int
	Origin image.Point
}

// hexOffset is the vertical shift applied to odd columns.
func (l Layout) hexOffset(col int) int {
	if !l.Shape.IsHex || col%2 == 0 {
		return 0
	}
	return l.TileH / 2
}

// TileRect returns the area covered by the tile at c. The result is empty for
// coordinates outside the shape.
func (l Layout) TileRect(c core.Coordinate) image.Rectangle {
	if !l.Shape.Contains(c) || l.TileW <= 0 || l.TileH <= 0 {
		return image.Rectangle{}
	}
	x := l.Origin.X + c.Col*l.TileW
	y := l.Origin.Y + c.Row*l.TileH + l.hexOffset(c.Col)
	return image.Rect(x, y, x+l.TileW, y+l.TileH)
}

// Bounds returns the area covered by the whole grid.
func (l Layout) Bounds() image.Rectangle {
	if l.Shape.Validate() != nil || l.TileW <= 0 || l.TileH <= 0 {
		return image.Rectangle{Min: l.Origin, Max: l.Origin}
	}
	w := l.Shape.Cols * l.TileW
	h := l.Shape.Rows * l.TileH
	if l.Shape.IsHex && l.Shape.Cols > 1 {
		h += l.TileH / 2
	}
	return image.Rect(l.Origin.X, l.Origin.Y, l.Origin.X+w, l.Origin.Y+h)
}

// CoordinateAt resolves the tile under point (x, y). Points between shifted
// hex columns or outside the grid resolve to not found.
func (l Layout) CoordinateAt(x, y int) (core.Coordinate, bool) {
	if l.TileW <= 0 || l.TileH <= 0 {
		return core.Coordinate{}, false
	}
	p := image.Pt(x, y)
	if !p.In(l.Bounds()) {
		return core.Coordinate{}, false
	}
	col := (x - l.Origin.X) / l.TileW
	dy := y - l.Origin.Y - l.hexOffset(col)
	if dy < 0 {
		return core.Coordinate{}, false
	}
	c := core.At(col, dy/l.TileH)
	if !l.Shape.Contains(c) {
		return core.Coordinate{}, false
	}
	return c, true
}

package core

// Grid stores a 2D grid of values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions produce an empty grid.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		return &Grid[T]{}
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y) and whether the position exists.
func (g *Grid[T]) At(x, y int) (T, bool) {
	var zero T
	if !g.InBounds(x, y) {
		return zero, false
	}
	return g.data[g.Index(x, y)], true
}

// Clone returns a copy with its own backing slice.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{W: g.W, H: g.H}
	if g.data != nil {
		out.data = append([]T(nil), g.data...)
	}
	return out
}

// Columns groups the row-major cells into columns, each ordered by row.
func (g *Grid[T]) Columns() [][]T {
	if len(g.data) == 0 {
		return nil
	}
	cols := make([][]T, g.W)
	for x := 0; x < g.W; x++ {
		col := make([]T, g.H)
		for y := 0; y < g.H; y++ {
			col[y] = g.data[g.Index(x, y)]
		}
		cols[x] = col
	}
	return cols
}

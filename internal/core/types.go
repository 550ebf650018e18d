package core

import (
	"errors"
	"fmt"
)

// ErrInvalidShape reports a grid shape with fewer than one row or column.
var ErrInvalidShape = errors.New("invalid grid shape")

// Size describes the dimensions of a tile grid in columns (W) and rows (H).
type Size struct {
	W int
	H int
}

// Coordinate identifies one tile by column and row.
type Coordinate struct {
	Col int
	Row int
}

// At is shorthand for Coordinate{Col: col, Row: row}.
func At(col, row int) Coordinate { return Coordinate{Col: col, Row: row} }

func (c Coordinate) String() string { return fmt.Sprintf("%d, %d", c.Col, c.Row) }

// Shape is the externally owned grid configuration. Any field change
// requires a full rebuild of the tile collection.
type Shape struct {
	Rows  int  `yaml:"rows"`
	Cols  int  `yaml:"cols"`
	IsHex bool `yaml:"hex"`
}

// Size returns the shape's dimensions.
func (s Shape) Size() Size { return Size{W: s.Cols, H: s.Rows} }

// Validate rejects shapes with fewer than one row or column.
func (s Shape) Validate() error {
	if s.Rows < 1 {
		return fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidShape, s.Rows)
	}
	if s.Cols < 1 {
		return fmt.Errorf("%w: cols must be at least 1, got %d", ErrInvalidShape, s.Cols)
	}
	return nil
}

// Contains reports whether c lies inside the shape's bounds.
func (s Shape) Contains(c Coordinate) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < s.Cols && c.Row < s.Rows
}

func (s Shape) String() string {
	layout := "square"
	if s.IsHex {
		layout = "hex"
	}
	return fmt.Sprintf("%dx%d %s", s.Rows, s.Cols, layout)
}

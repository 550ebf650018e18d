package grid

import "map-tools/internal/core"

// Store owns the tile collection of the current shape. The collection is
// copy-on-write: each change publishes a new grid, so slices handed out by
// Tiles and Columns are never mutated afterwards.
type Store struct {
	shape      core.Shape
	tiles      *core.Grid[Tile]
	generation uint64
}

// NewStore returns an empty store. Call Rebuild before use.
func NewStore() *Store {
	return &Store{tiles: core.NewGrid[Tile](0, 0)}
}

// Shape returns the shape of the current collection.
func (s *Store) Shape() core.Shape { return s.shape }

// Generation counts successful rebuilds. Coordinates captured under an older
// generation refer to a discarded collection.
func (s *Store) Generation() uint64 { return s.generation }

// Rebuild replaces the whole collection with rows*cols fresh quantum tiles in
// row-major order. An invalid shape is rejected and the previous collection
// kept.
func (s *Store) Rebuild(shape core.Shape) ([]Tile, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	next := core.NewGrid[Tile](shape.Cols, shape.Rows)
	cells := next.Cells()
	for row := 0; row < shape.Rows; row++ {
		for col := 0; col < shape.Cols; col++ {
			cells[next.Index(col, row)] = newTile(core.At(col, row))
		}
	}
	s.shape = shape
	s.tiles = next
	s.generation++
	return cells, nil
}

// Tiles returns the current collection in row-major order. Treat it as
// read-only.
func (s *Store) Tiles() []Tile { return s.tiles.Cells() }

// Len returns the number of tiles.
func (s *Store) Len() int { return len(s.tiles.Cells()) }

// TileAt looks a tile up by coordinate. Coordinates outside the current
// bounds, including negative ones, report false.
func (s *Store) TileAt(c core.Coordinate) (Tile, bool) {
	return s.tiles.At(c.Col, c.Row)
}

// Columns returns a column-major view of the current collection.
func (s *Store) Columns() [][]Tile { return s.tiles.Columns() }

// ApplyHighlights recomputes every tile's highlight from st and reports
// whether any tile changed.
func (s *Store) ApplyHighlights(st InteractionState) bool {
	cur := s.tiles.Cells()
	changed := false
	for _, tile := range cur {
		if HighlightFor(tile.coord, st) != tile.highlight {
			changed = true
			break
		}
	}
	if !changed {
		return false
	}
	next := s.tiles.Clone()
	cells := next.Cells()
	for i := range cells {
		cells[i] = cells[i].withHighlight(HighlightFor(cells[i].coord, st))
	}
	s.tiles = next
	return true
}

// replace publishes a new collection in which the tile at c is swapped for
// t. The caller has already checked that c is in bounds.
func (s *Store) replace(c core.Coordinate, t Tile) {
	next := s.tiles.Clone()
	next.Cells()[next.Index(c.Col, c.Row)] = t
	s.tiles = next
}

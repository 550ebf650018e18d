package grid

import "map-tools/internal/core"

// Paint applies b to the tile at c: a terrain brush collapses the candidates
// to that single terrain, the eraser restores the full set. Partial narrowing
// is not supported. Painting is idempotent and a missing tile is a no-op.
// It reports whether the tile's candidates changed.
func (s *Store) Paint(c core.Coordinate, b Brush) bool {
	tile, ok := s.TileAt(c)
	if !ok {
		return false
	}
	next := AllCandidates
	if !b.Erase {
		if int(b.Terrain) >= terrainCount {
			return false
		}
		next = Only(b.Terrain)
	}
	if tile.candidates == next {
		return false
	}
	s.replace(c, tile.withCandidates(next))
	return true
}

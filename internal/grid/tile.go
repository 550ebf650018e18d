package grid

import "map-tools/internal/core"

// HighlightMode is the derived visual selection state of a tile.
type HighlightMode uint8

const (
	Unselected HighlightMode = iota
	Selected
	Hovered
	// HoverNeighbors is reserved for neighbour highlighting and never
	// assigned by the engine.
	HoverNeighbors
)

func (m HighlightMode) String() string {
	switch m {
	case Selected:
		return "selected"
	case Hovered:
		return "hovered"
	case HoverNeighbors:
		return "hover-neighbors"
	default:
		return "unselected"
	}
}

// QuantumCategory is the display category of an uncollapsed tile.
const QuantumCategory = "quantum"

// Tile is one grid cell. Tiles are immutable values; the store publishes new
// records whenever candidates or highlights change.
type Tile struct {
	coord      core.Coordinate
	candidates Candidates
	highlight  HighlightMode
}

func newTile(c core.Coordinate) Tile {
	return Tile{coord: c, candidates: AllCandidates, highlight: Unselected}
}

// Coordinate returns the tile's fixed (column, row).
func (t Tile) Coordinate() core.Coordinate { return t.coord }

// Candidates returns the terrain types the tile may still become.
func (t Tile) Candidates() Candidates { return t.candidates }

// Highlight returns the tile's current highlight mode.
func (t Tile) Highlight() HighlightMode { return t.highlight }

// Collapsed reports whether exactly one candidate remains.
func (t Tile) Collapsed() bool { return t.candidates.Len() == 1 }

// Quantum reports whether more than one candidate remains.
func (t Tile) Quantum() bool { return t.candidates.Len() > 1 }

// Terrain returns the collapsed terrain, if any.
func (t Tile) Terrain() (TerrainType, bool) { return t.candidates.Collapsed() }

// Category is the terrain name for collapsed tiles and "quantum" otherwise.
func (t Tile) Category() string {
	if terrain, ok := t.Terrain(); ok {
		return terrain.String()
	}
	return QuantumCategory
}

func (t Tile) withCandidates(c Candidates) Tile {
	t.candidates = c
	return t
}

func (t Tile) withHighlight(m HighlightMode) Tile {
	t.highlight = m
	return t
}

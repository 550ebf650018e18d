package grid

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrUnknownTerrain is returned when a terrain or brush name cannot be parsed.
var ErrUnknownTerrain = errors.New("unknown terrain")

// TerrainType enumerates the terrain a tile can collapse to.
type TerrainType uint8

const (
	Ocean TerrainType = iota
	Sand
	Grass
	Forest
	Stone

	terrainCount = iota
)

// Terrains lists every terrain type in enumeration order.
var Terrains = []TerrainType{Ocean, Sand, Grass, Forest, Stone}

var terrainNames = [terrainCount]string{"ocean", "sand", "grass", "forest", "stone"}

func (t TerrainType) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

// ParseTerrain resolves a terrain name, ignoring case and surrounding space.
func ParseTerrain(name string) (TerrainType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range terrainNames {
		if candidate == n {
			return TerrainType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTerrain, name)
}

// Candidates is the ordered set of terrain types a tile may still become,
// stored as a bitmask indexed by TerrainType.
type Candidates uint8

// AllCandidates is the full five-type set of an uncollapsed tile.
const AllCandidates Candidates = 1<<terrainCount - 1

// Only returns the single-element set {t}.
func Only(t TerrainType) Candidates { return Candidates(1) << t }

// Has reports whether t is a member.
func (c Candidates) Has(t TerrainType) bool { return c&Only(t) != 0 }

// Len returns the number of members.
func (c Candidates) Len() int { return bits.OnesCount8(uint8(c & AllCandidates)) }

// Types returns the members in enumeration order.
func (c Candidates) Types() []TerrainType {
	out := make([]TerrainType, 0, c.Len())
	for _, t := range Terrains {
		if c.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// Collapsed returns the single remaining terrain when the set has exactly one
// member.
func (c Candidates) Collapsed() (TerrainType, bool) {
	if c.Len() != 1 {
		return 0, false
	}
	return TerrainType(bits.TrailingZeros8(uint8(c))), true
}

func (c Candidates) String() string {
	names := make([]string, 0, c.Len())
	for _, t := range c.Types() {
		names = append(names, t.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Brush is a paint intent: a concrete terrain, or erase.
type Brush struct {
	Terrain TerrainType
	Erase   bool
}

// Eraser resets a tile to the full candidate set.
var Eraser = Brush{Erase: true}

// PaintWith returns a brush that collapses tiles to t.
func PaintWith(t TerrainType) Brush { return Brush{Terrain: t} }

// ParseBrush accepts a terrain name or "erase" (also "none" or empty).
func ParseBrush(name string) (Brush, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "erase", "none":
		return Eraser, nil
	}
	t, err := ParseTerrain(name)
	if err != nil {
		return Brush{}, err
	}
	return PaintWith(t), nil
}

func (b Brush) String() string {
	if b.Erase {
		return "erase"
	}
	return b.Terrain.String()
}

// BrushNames lists every brush option, terrains first then erase.
func BrushNames() []string {
	out := make([]string, 0, len(Terrains)+1)
	for _, t := range Terrains {
		out = append(out, t.String())
	}
	return append(out, Eraser.String())
}

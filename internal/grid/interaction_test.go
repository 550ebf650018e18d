package grid

import (
	"math/rand/v2"
	"testing"

	"map-tools/internal/core"
)

// assertHighlightInvariants fails the test when the tile highlights disagree
// with the interaction state.
func assertHighlightInvariants(t *testing.T, e *Engine) {
	t.Helper()
	st := e.State()
	hover, hasHover := st.Hover()
	selected, hasSelected := st.Selected()

	var selectedTiles, hoveredTiles []core.Coordinate
	for _, tile := range e.Tiles() {
		switch tile.Highlight() {
		case Selected:
			selectedTiles = append(selectedTiles, tile.Coordinate())
		case Hovered:
			hoveredTiles = append(hoveredTiles, tile.Coordinate())
		case HoverNeighbors:
			t.Fatalf("tile %v has reserved highlight %v", tile.Coordinate(), tile.Highlight())
		}
	}
	if len(selectedTiles) > 1 || len(hoveredTiles) > 1 {
		t.Fatalf("selected=%v hovered=%v: more than one tile per mode", selectedTiles, hoveredTiles)
	}
	if len(selectedTiles) == 1 && (!hasSelected || selectedTiles[0] != selected) {
		t.Fatalf("tile %v selected but state selected=%v,%v", selectedTiles[0], selected, hasSelected)
	}
	if hasSelected && e.Shape().Contains(selected) && len(selectedTiles) != 1 {
		t.Fatalf("state selects %v but no tile is selected", selected)
	}
	if len(hoveredTiles) == 1 {
		if !hasHover || hoveredTiles[0] != hover {
			t.Fatalf("tile %v hovered but state hover=%v,%v", hoveredTiles[0], hover, hasHover)
		}
		if hasSelected && hover == selected {
			t.Fatalf("tile %v hovered while hovering the selection", hover)
		}
	}
	wantHovered := hasHover && e.Shape().Contains(hover) && !(hasSelected && hover == selected)
	if wantHovered != (len(hoveredTiles) == 1) {
		t.Fatalf("hover=%v,%v selected=%v,%v but hovered tiles %v", hover, hasHover, selected, hasSelected, hoveredTiles)
	}
}

func TestHighlightForPrecedence(t *testing.T) {
	a, b, c := core.At(0, 0), core.At(1, 1), core.At(2, 2)
	var none InteractionState

	cases := []struct {
		name  string
		state InteractionState
		want  map[core.Coordinate]HighlightMode
	}{
		{"idle", none, map[core.Coordinate]HighlightMode{a: Unselected, b: Unselected}},
		{"hover only", none.WithHover(a), map[core.Coordinate]HighlightMode{a: Hovered, b: Unselected}},
		{"select only", none.WithSelected(a), map[core.Coordinate]HighlightMode{a: Selected, b: Unselected}},
		{"hover other", none.WithSelected(a).WithHover(b), map[core.Coordinate]HighlightMode{a: Selected, b: Hovered, c: Unselected}},
		{"hover selection", none.WithSelected(a).WithHover(a), map[core.Coordinate]HighlightMode{a: Selected, b: Unselected}},
	}
	for _, tc := range cases {
		for coord, want := range tc.want {
			if got := HighlightFor(coord, tc.state); got != want {
				t.Fatalf("%s: HighlightFor(%v) = %v, want %v", tc.name, coord, got, want)
			}
		}
	}
}

func TestInteractionTransitions(t *testing.T) {
	var m Interaction
	if _, ok := m.State().Hover(); ok {
		t.Fatal("initial hover should be none")
	}
	m.PointerEnter(core.At(1, 2))
	m.Click(core.At(3, 4))
	m.PointerLeaveTile(core.At(1, 2))
	if _, ok := m.State().Hover(); ok {
		t.Fatal("leave tile should clear hover")
	}
	m.PointerEnter(core.At(5, 5))
	st := m.PointerLeaveGrid()
	if _, ok := st.Hover(); ok {
		t.Fatal("leave grid should clear hover")
	}
	if sel, ok := st.Selected(); !ok || sel != core.At(3, 4) {
		t.Fatalf("leave grid changed selection to %v,%v", sel, ok)
	}
	m.PointerEnter(core.At(2, 2))
	st = m.Clear()
	if _, ok := st.Selected(); ok {
		t.Fatal("clear should drop selection")
	}
	if _, ok := st.Hover(); ok {
		t.Fatal("clear should drop hover until the next enter")
	}
	if h, ok := m.PointerEnter(core.At(2, 2)).Hover(); !ok || h != core.At(2, 2) {
		t.Fatalf("enter after clear: hover = %v, %v", h, ok)
	}
	m.Click(core.At(0, 0))
	m.PointerEnter(core.At(0, 0))
	st = m.Reset()
	if _, ok := st.Selected(); ok {
		t.Fatal("reset should drop selection")
	}
	if _, ok := st.Hover(); ok {
		t.Fatal("reset should drop hover")
	}
}

func TestRandomEventSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	e := NewEngine()
	if err := e.Rebuild(core.Shape{Rows: 4, Cols: 5}); err != nil {
		t.Fatal(err)
	}
	randomCoord := func() core.Coordinate {
		// Deliberately reach one step outside the grid.
		return core.At(rng.IntN(7)-1, rng.IntN(6)-1)
	}
	for i := 0; i < 2000; i++ {
		switch rng.IntN(6) {
		case 0:
			e.PointerEnter(randomCoord())
		case 1:
			e.PointerLeaveTile(randomCoord())
		case 2:
			e.PointerLeaveGrid()
		case 3:
			e.Click(randomCoord())
		case 4:
			e.ClearSelection()
		case 5:
			e.Paint(randomCoord(), PaintWith(Terrains[rng.IntN(len(Terrains))]))
		}
		assertHighlightInvariants(t, e)
	}
}

package grid

import "map-tools/internal/core"

// InteractionState holds the hover and selected coordinates. Either may be
// absent. It carries coordinates only, never tiles.
type InteractionState struct {
	hover       core.Coordinate
	selected    core.Coordinate
	hasHover    bool
	hasSelected bool
}

// Hover returns the hovered coordinate, if any.
func (s InteractionState) Hover() (core.Coordinate, bool) { return s.hover, s.hasHover }

// Selected returns the selected coordinate, if any.
func (s InteractionState) Selected() (core.Coordinate, bool) { return s.selected, s.hasSelected }

// WithHover returns a copy with hover set to c.
func (s InteractionState) WithHover(c core.Coordinate) InteractionState {
	s.hover, s.hasHover = c, true
	return s
}

// WithoutHover returns a copy with hover cleared.
func (s InteractionState) WithoutHover() InteractionState {
	s.hover, s.hasHover = core.Coordinate{}, false
	return s
}

// WithSelected returns a copy with selected set to c.
func (s InteractionState) WithSelected(c core.Coordinate) InteractionState {
	s.selected, s.hasSelected = c, true
	return s
}

// WithoutSelected returns a copy with selected cleared.
func (s InteractionState) WithoutSelected() InteractionState {
	s.selected, s.hasSelected = core.Coordinate{}, false
	return s
}

// HoveringSelection reports the tie-break case: the pointer is over the
// already selected tile.
func (s InteractionState) HoveringSelection() bool {
	return s.hasHover && s.hasSelected && s.hover == s.selected
}

// HighlightFor derives the highlight of the tile at c from s alone.
//
// Precedence: hovering the selection leaves only the selected tile marked;
// otherwise the selection wins over hover on its own tile, and hover marks
// any other tile. Everything else is unselected.
func HighlightFor(c core.Coordinate, s InteractionState) HighlightMode {
	if s.hasSelected && c == s.selected {
		return Selected
	}
	if s.HoveringSelection() {
		return Unselected
	}
	if s.hasHover && c == s.hover {
		return Hovered
	}
	return Unselected
}

// Interaction is the hover/selection state machine. Every transition returns
// the resulting state; highlight recomputation is left to the caller.
type Interaction struct {
	state InteractionState
}

// State returns the current state.
func (m *Interaction) State() InteractionState { return m.state }

// PointerEnter sets hover to c.
func (m *Interaction) PointerEnter(c core.Coordinate) InteractionState {
	m.state = m.state.WithHover(c)
	return m.state
}

// PointerLeaveTile clears hover. The coordinate is informational.
func (m *Interaction) PointerLeaveTile(core.Coordinate) InteractionState {
	m.state = m.state.WithoutHover()
	return m.state
}

// PointerLeaveGrid clears hover and never touches the selection.
func (m *Interaction) PointerLeaveGrid() InteractionState {
	m.state = m.state.WithoutHover()
	return m.state
}

// Click selects c.
func (m *Interaction) Click(c core.Coordinate) InteractionState {
	m.state = m.state.WithSelected(c)
	return m.state
}

// Clear drops the selection and the hover. Hover returns with the next
// PointerEnter.
func (m *Interaction) Clear() InteractionState {
	m.state = m.state.WithoutSelected().WithoutHover()
	return m.state
}

// Reset returns to the initial (none, none) state.
func (m *Interaction) Reset() InteractionState {
	m.state = InteractionState{}
	return m.state
}

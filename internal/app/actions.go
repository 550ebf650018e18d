package app

import (
	"unicode"

	"map-tools/internal/grid"
)

// Action is a keyboard command shared by the graphical and terminal views.
type Action string

const (
	ActionQuit       Action = "quit"
	ActionClear      Action = "clear-selection"
	ActionToggleEdit Action = "toggle-edit"
	ActionToggleHex  Action = "toggle-hex"
	ActionAddRow     Action = "add-row"
	ActionRemoveRow  Action = "remove-row"
	ActionAddCol     Action = "add-col"
	ActionRemoveCol  Action = "remove-col"
	ActionErase      Action = "brush-erase"
	ActionOcean      Action = "brush-ocean"
	ActionSand       Action = "brush-sand"
	ActionGrass      Action = "brush-grass"
	ActionForest     Action = "brush-forest"
	ActionStone      Action = "brush-stone"
)

var brushActions = map[Action]grid.Brush{
	ActionErase:  grid.Eraser,
	ActionOcean:  grid.PaintWith(grid.Ocean),
	ActionSand:   grid.PaintWith(grid.Sand),
	ActionGrass:  grid.PaintWith(grid.Grass),
	ActionForest: grid.PaintWith(grid.Forest),
	ActionStone:  grid.PaintWith(grid.Stone),
}

// ActionForRune maps a typed character to its action. Digits 1-5 pick a
// terrain brush in declaration order and 0 picks the eraser.
func ActionForRune(r rune) (Action, bool) {
	switch unicode.ToLower(r) {
	case 'q':
		return ActionQuit, true
	case 'e':
		return ActionToggleEdit, true
	case 'h':
		return ActionToggleHex, true
	case '0':
		return ActionErase, true
	case '1':
		return ActionOcean, true
	case '2':
		return ActionSand, true
	case '3':
		return ActionGrass, true
	case '4':
		return ActionForest, true
	case '5':
		return ActionStone, true
	}
	return "", false
}

// Do applies a to the editor. Quit is left to the caller. Shape actions that
// would produce an invalid grid are rejected and recorded as the last error.
func (e *Editor) Do(a Action) {
	if b, ok := brushActions[a]; ok {
		e.SetBrush(b)
		return
	}
	switch a {
	case ActionClear:
		e.ClearSelection()
	case ActionToggleEdit:
		e.ToggleMode()
	case ActionToggleHex:
		e.SetHex(!e.shape.IsHex)
	case ActionAddRow:
		e.SetRows(min(e.shape.Rows+1, MaxDimension))
	case ActionRemoveRow:
		e.SetRows(e.shape.Rows - 1)
	case ActionAddCol:
		e.SetCols(min(e.shape.Cols+1, MaxDimension))
	case ActionRemoveCol:
		e.SetCols(e.shape.Cols - 1)
	}
}

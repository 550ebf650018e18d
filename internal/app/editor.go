package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"map-tools/internal/core"
	"map-tools/internal/grid"
)

// EditMode decides whether clicks only select or also paint.
type EditMode string

const (
	ModeView EditMode = "view"
	ModeEdit EditMode = "edit"
)

// modeLoad is accepted for saved editor settings and behaves as view; the
// editor has no map loading.
const modeLoad = "load"

// ParseMode resolves an edit mode name. "load" maps to ModeView.
func ParseMode(name string) (EditMode, error) {
	switch EditMode(strings.ToLower(strings.TrimSpace(name))) {
	case ModeView, modeLoad:
		return ModeView, nil
	case ModeEdit:
		return ModeEdit, nil
	}
	return "", fmt.Errorf("unknown edit mode %q", name)
}

// MaxDimension bounds rows and columns adjustable from the control panel.
const MaxDimension = 64

// Editor is the configuration owner and input controller sitting between a
// view and the grid engine. Views translate raw input into Editor calls; the
// Editor turns them into engine events and applies them on Flush.
type Editor struct {
	engine *grid.Engine
	queue  *grid.Queue
	log    *slog.Logger

	shape core.Shape
	mode  EditMode
	brush grid.Brush

	pointer       core.Coordinate
	pointerOnTile bool
	pointerInGrid bool

	lastErr error
}

// NewEditor validates cfg and builds the initial grid.
func NewEditor(cfg *Config, logger *slog.Logger, opts ...grid.Option) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, _ := ParseMode(cfg.Mode)
	brush, _ := grid.ParseBrush(cfg.Brush)
	if logger == nil {
		logger = slog.Default()
	}
	opts = append([]grid.Option{grid.WithLogger(logger)}, opts...)
	engine := grid.NewEngine(opts...)
	if err := engine.Rebuild(cfg.Shape()); err != nil {
		return nil, err
	}
	return &Editor{
		engine: engine,
		queue:  grid.NewQueue(engine),
		log:    logger,
		shape:  cfg.Shape(),
		mode:   mode,
		brush:  brush,
	}, nil
}

// Engine exposes the underlying engine for rendering.
func (e *Editor) Engine() *grid.Engine { return e.engine }

// Shape returns the configured shape. It runs ahead of the engine's shape
// until the next Flush.
func (e *Editor) Shape() core.Shape { return e.shape }

// Mode returns the edit mode.
func (e *Editor) Mode() EditMode { return e.mode }

// Brush returns the current brush.
func (e *Editor) Brush() grid.Brush { return e.brush }

// LastError returns the most recent configuration error, or nil.
func (e *Editor) LastError() error { return e.lastErr }

// SetShape requests a rebuild when s differs from the configured shape. An
// invalid shape is rejected here and the current grid is kept.
func (e *Editor) SetShape(s core.Shape) error {
	if s == e.shape {
		return nil
	}
	if err := s.Validate(); err != nil {
		e.lastErr = err
		e.log.Warn("shape change rejected", "rows", s.Rows, "cols", s.Cols, "err", err)
		return err
	}
	e.lastErr = nil
	e.shape = s
	e.pointerOnTile = false
	e.queue.Push(grid.ShapeChange(s))
	return nil
}

// SetRows changes the row count.
func (e *Editor) SetRows(n int) error {
	s := e.shape
	s.Rows = n
	return e.SetShape(s)
}

// SetCols changes the column count.
func (e *Editor) SetCols(n int) error {
	s := e.shape
	s.Cols = n
	return e.SetShape(s)
}

// SetHex switches between square and hex layout.
func (e *Editor) SetHex(hex bool) error {
	s := e.shape
	s.IsHex = hex
	return e.SetShape(s)
}

// SetMode changes the edit mode.
func (e *Editor) SetMode(m EditMode) { e.mode = m }

// ToggleMode flips between view and edit.
func (e *Editor) ToggleMode() {
	if e.mode == ModeEdit {
		e.mode = ModeView
		return
	}
	e.mode = ModeEdit
}

// SetBrush changes the brush. In edit mode the selected tile is painted with
// the new brush right away.
func (e *Editor) SetBrush(b grid.Brush) {
	if b == e.brush {
		return
	}
	e.brush = b
	if e.mode != ModeEdit {
		return
	}
	if err := e.Flush(); err != nil {
		e.log.Warn("events rejected", "err", err)
	}
	if sel, ok := e.engine.Selected(); ok {
		e.queue.Push(grid.PaintRequest(sel, b))
	}
}

// PointerMoved reports where the pointer is: over the tile at c when onTile,
// and whether it is still inside the grid area. It emits leave/enter events
// only when the hovered tile changes.
func (e *Editor) PointerMoved(c core.Coordinate, onTile, inGrid bool) {
	if onTile && e.pointerOnTile && c == e.pointer {
		return
	}
	if e.pointerOnTile {
		e.queue.Push(grid.PointerLeave(e.pointer))
		e.pointerOnTile = false
	}
	if onTile {
		e.queue.Push(grid.PointerEnter(c))
		e.pointer = c
		e.pointerOnTile = true
		inGrid = true
	}
	if !inGrid && e.pointerInGrid {
		e.queue.Push(grid.PointerLeaveGrid())
	}
	e.pointerInGrid = inGrid
}

// PointerPressed selects the tile at c and, in edit mode, paints it with the
// current brush.
func (e *Editor) PointerPressed(c core.Coordinate) {
	e.queue.Push(grid.Click(c))
	if e.mode == ModeEdit {
		e.queue.Push(grid.PaintRequest(c, e.brush))
	}
}

// RequestPaint paints the tile at c with the current brush. Ignored in view
// mode.
func (e *Editor) RequestPaint(c core.Coordinate) {
	if e.mode != ModeEdit {
		return
	}
	e.queue.Push(grid.PaintRequest(c, e.brush))
}

// ClearSelection drops the selection. The engine drops the hover with it, so
// the next pointer move re-enters the tile under the pointer.
func (e *Editor) ClearSelection() {
	e.queue.Push(grid.ClearSelection())
	e.pointerOnTile = false
}

// Flush applies every pending event in arrival order.
func (e *Editor) Flush() error {
	errs := e.queue.Drain()
	if len(errs) == 0 {
		return nil
	}
	err := errors.Join(errs...)
	e.lastErr = err
	return err
}

// HoverText is the hover status line value.
func (e *Editor) HoverText() string {
	if c, ok := e.engine.Hover(); ok {
		return c.String()
	}
	return "none"
}

// SelectedText is the selection status line value.
func (e *Editor) SelectedText() string {
	if c, ok := e.engine.Selected(); ok {
		return c.String()
	}
	return "none"
}

// StatusLines returns the status display shown under the grid.
func (e *Editor) StatusLines() []string {
	lines := []string{
		"Hovering over " + e.HoverText(),
		"Selected tile " + e.SelectedText(),
		fmt.Sprintf("Mode %s, brush %s", e.mode, e.brush),
	}
	if e.lastErr != nil {
		lines = append(lines, "Error: "+e.lastErr.Error())
	}
	return lines
}

// Parameters exposes the editor state to the control panel.
func (e *Editor) Parameters() core.ParameterSnapshot {
	errText := ""
	if e.lastErr != nil {
		errText = e.lastErr.Error()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", e.shape.Rows),
				intParam("cols", "Columns", e.shape.Cols),
				boolParam("hex", "Hex grid", e.shape.IsHex),
			},
		},
		{
			Name: "Editing",
			Params: []core.Parameter{
				boolParam("edit", "Edit mode", e.mode == ModeEdit),
				{Key: "brush", Label: "Brush", Type: core.ParamTypeChoice, Value: e.brush.String()},
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				textParam("hover", "Hovering over", e.HoverText()),
				textParam("selected", "Selected tile", e.SelectedText()),
				textParam("error", "Error", errText),
			},
		},
	}}
}

// ParameterControls lists the adjustable controls shown on the HUD.
func (e *Editor) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: MaxDimension, HasMax: true},
		{Key: "cols", Label: "Columns", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: MaxDimension, HasMax: true},
		{Key: "hex", Label: "Hex grid", Type: core.ParamTypeBool},
		{Key: "edit", Label: "Edit mode", Type: core.ParamTypeBool},
		{Key: "brush", Label: "Brush", Type: core.ParamTypeChoice, Options: grid.BrushNames()},
	}
}

// SetIntParameter updates rows or columns.
func (e *Editor) SetIntParameter(key string, value int) bool {
	switch key {
	case "rows":
		return e.SetRows(value) == nil
	case "cols":
		return e.SetCols(value) == nil
	}
	return false
}

// SetBoolParameter toggles hex layout or edit mode.
func (e *Editor) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "hex":
		return e.SetHex(value) == nil
	case "edit":
		if value {
			e.SetMode(ModeEdit)
		} else {
			e.SetMode(ModeView)
		}
		return true
	}
	return false
}

// SetChoiceParameter picks the brush.
func (e *Editor) SetChoiceParameter(key string, value string) bool {
	if key != "brush" {
		return false
	}
	b, err := grid.ParseBrush(value)
	if err != nil {
		return false
	}
	e.SetBrush(b)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}

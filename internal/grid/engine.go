// Package grid implements the tile grid state engine: the candidate-set tile
// model, the hover/selection state machine with derived highlights, painting,
// and full rebuilds on shape change.
//
// All transitions run synchronously to completion. The engine is not safe for
// concurrent use; views feed it from a single event loop.
package grid

import (
	"fmt"
	"io"
	"log/slog"

	"map-tools/internal/core"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithDispatcher publishes change notifications through d.
func WithDispatcher(d *Dispatcher) Option {
	return func(e *Engine) {
		if d != nil {
			e.dispatcher = d
		}
	}
}

// Engine ties the store, the interaction state machine and the paint
// applicator together and keeps highlights in sync after every transition.
type Engine struct {
	store       *Store
	interaction Interaction
	dispatcher  *Dispatcher
	log         *slog.Logger
}

// NewEngine returns an engine with an empty store.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		store:      NewStore(),
		dispatcher: NewDispatcher(),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dispatcher returns the notification dispatcher.
func (e *Engine) Dispatcher() *Dispatcher { return e.dispatcher }

// Rebuild discards every tile and the interaction state and creates a fresh
// collection for shape. An invalid shape is rejected with the previous grid
// left untouched.
func (e *Engine) Rebuild(shape core.Shape) error {
	if _, err := e.store.Rebuild(shape); err != nil {
		e.log.Warn("shape change rejected", "rows", shape.Rows, "cols", shape.Cols, "hex", shape.IsHex, "err", err)
		return fmt.Errorf("rebuild grid: %w", err)
	}
	st := e.interaction.Reset()
	e.store.ApplyHighlights(st)
	e.log.Debug("grid rebuilt", "rows", shape.Rows, "cols", shape.Cols, "hex", shape.IsHex, "generation", e.store.Generation())
	e.notify(GridRebuilt, Tile{})
	return nil
}

// PointerEnter marks c as hovered. Coordinates outside the grid are ignored.
func (e *Engine) PointerEnter(c core.Coordinate) {
	if !e.store.Shape().Contains(c) {
		e.log.Debug("pointer enter outside grid ignored", "coord", c)
		return
	}
	e.highlight(e.interaction.PointerEnter(c))
}

// PointerLeaveTile clears hover after the pointer leaves the tile at c.
func (e *Engine) PointerLeaveTile(c core.Coordinate) {
	e.highlight(e.interaction.PointerLeaveTile(c))
}

// PointerLeaveGrid clears hover. The selection is kept.
func (e *Engine) PointerLeaveGrid() {
	e.highlight(e.interaction.PointerLeaveGrid())
}

// Click selects c. Coordinates outside the grid are ignored.
func (e *Engine) Click(c core.Coordinate) {
	if !e.store.Shape().Contains(c) {
		e.log.Debug("click outside grid ignored", "coord", c)
		return
	}
	e.highlight(e.interaction.Click(c))
}

// ClearSelection drops the selection and the hover, leaving every tile
// unselected.
func (e *Engine) ClearSelection() {
	e.highlight(e.interaction.Clear())
}

// Paint applies b to the tile at c and reports whether the tile changed.
func (e *Engine) Paint(c core.Coordinate, b Brush) bool {
	if !e.store.Paint(c, b) {
		return false
	}
	tile, _ := e.store.TileAt(c)
	e.log.Debug("tile painted", "coord", c, "brush", b.String(), "candidates", tile.Candidates().String())
	e.notify(TilePainted, tile)
	return true
}

// Handle applies one inbound event. Only shape-change events can fail, with a
// wrapped core.ErrInvalidShape.
func (e *Engine) Handle(ev Event) error {
	switch ev.Type {
	case EventPointerEnter:
		e.PointerEnter(ev.Coordinate)
	case EventPointerLeave:
		e.PointerLeaveTile(ev.Coordinate)
	case EventPointerLeaveGrid:
		e.PointerLeaveGrid()
	case EventClick:
		e.Click(ev.Coordinate)
	case EventClearSelection:
		e.ClearSelection()
	case EventPaint:
		e.Paint(ev.Coordinate, ev.Brush)
	case EventShapeChange:
		return e.Rebuild(ev.Shape)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

// State returns the interaction state.
func (e *Engine) State() InteractionState { return e.interaction.State() }

// Hover returns the hovered coordinate, if any.
func (e *Engine) Hover() (core.Coordinate, bool) { return e.interaction.State().Hover() }

// Selected returns the selected coordinate, if any.
func (e *Engine) Selected() (core.Coordinate, bool) { return e.interaction.State().Selected() }

// Shape returns the current grid shape.
func (e *Engine) Shape() core.Shape { return e.store.Shape() }

// Generation returns the store's rebuild generation.
func (e *Engine) Generation() uint64 { return e.store.Generation() }

// Tiles returns the current tiles in row-major order. Treat it as read-only.
func (e *Engine) Tiles() []Tile { return e.store.Tiles() }

// Columns returns the current tiles grouped by column.
func (e *Engine) Columns() [][]Tile { return e.store.Columns() }

// TileAt looks up the tile at c.
func (e *Engine) TileAt(c core.Coordinate) (Tile, bool) { return e.store.TileAt(c) }

func (e *Engine) highlight(st InteractionState) {
	if e.store.ApplyHighlights(st) {
		e.notify(HighlightsChanged, Tile{})
	}
}

func (e *Engine) notify(t NotificationType, tile Tile) {
	e.dispatcher.Dispatch(Notification{
		Type:       t,
		Shape:      e.store.Shape(),
		Generation: e.store.Generation(),
		State:      e.interaction.State(),
		Tile:       tile,
	})
}

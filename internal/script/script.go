// Package script loads recorded editing sessions and replays them through a
// grid engine without a view.
package script

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"map-tools/internal/core"
	"map-tools/internal/grid"

	"gopkg.in/yaml.v3"
)

// ErrInvalidStep reports a step that cannot be turned into an event.
var ErrInvalidStep = errors.New("invalid step")

// Op names a script step.
type Op string

const (
	OpEnter     Op = "enter"
	OpLeave     Op = "leave"
	OpLeaveGrid Op = "leave-grid"
	OpClick     Op = "click"
	OpClear     Op = "clear"
	OpPaint     Op = "paint"
	OpErase     Op = "erase"
	OpShape     Op = "shape"
)

// Step is one scripted input. At holds [col, row] for tile operations.
type Step struct {
	Op      Op     `yaml:"op"`
	At      []int  `yaml:"at,omitempty"`
	Terrain string `yaml:"terrain,omitempty"`
	Rows    int    `yaml:"rows,omitempty"`
	Cols    int    `yaml:"cols,omitempty"`
	Hex     bool   `yaml:"hex,omitempty"`
}

// Script is an initial shape followed by steps.
type Script struct {
	Shape core.Shape `yaml:"shape"`
	Steps []Step     `yaml:"steps"`
}

// Load decodes a script and checks every step.
func Load(r io.Reader) (*Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if _, err := s.Events(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads the script at path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Events converts every step, failing on the first malformed one.
func (s *Script) Events() ([]grid.Event, error) {
	events := make([]grid.Event, 0, len(s.Steps))
	for i, st := range s.Steps {
		ev, err := st.Event()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Event converts the step into an engine event.
func (st Step) Event() (grid.Event, error) {
	switch st.Op {
	case OpLeaveGrid:
		return grid.PointerLeaveGrid(), nil
	case OpClear:
		return grid.ClearSelection(), nil
	case OpShape:
		return grid.ShapeChange(core.Shape{Rows: st.Rows, Cols: st.Cols, IsHex: st.Hex}), nil
	}

	c, err := st.coordinate()
	if err != nil {
		return grid.Event{}, err
	}
	switch st.Op {
	case OpEnter:
		return grid.PointerEnter(c), nil
	case OpLeave:
		return grid.PointerLeave(c), nil
	case OpClick:
		return grid.Click(c), nil
	case OpErase:
		return grid.PaintRequest(c, grid.Eraser), nil
	case OpPaint:
		terrain, err := grid.ParseTerrain(st.Terrain)
		if err != nil {
			return grid.Event{}, fmt.Errorf("%w: paint: %w", ErrInvalidStep, err)
		}
		return grid.PaintRequest(c, grid.PaintWith(terrain)), nil
	}
	return grid.Event{}, fmt.Errorf("%w: unknown op %q", ErrInvalidStep, st.Op)
}

func (st Step) coordinate() (core.Coordinate, error) {
	if len(st.At) != 2 {
		return core.Coordinate{}, fmt.Errorf("%w: %s needs at: [col, row], got %v", ErrInvalidStep, st.Op, st.At)
	}
	return core.At(st.At[0], st.At[1]), nil
}

// Replay rebuilds e with the script's shape and applies each step in order.
// Rejected steps such as an invalid shape change are logged and collected;
// replay continues past them.
func Replay(s *Script, e *grid.Engine, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := e.Rebuild(s.Shape); err != nil {
		return err
	}
	events, err := s.Events()
	if err != nil {
		return err
	}
	q := grid.NewQueue(e)
	var errs []error
	for i, ev := range events {
		q.Push(ev)
		for _, err := range q.Drain() {
			logger.Warn("step rejected", "step", i, "event", ev.String(), "err", err)
			errs = append(errs, fmt.Errorf("step %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

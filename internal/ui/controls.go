package ui

import (
	"strconv"

	"map-tools/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Panel tracks the adjustable controls and status text of a parameter
// provider. It holds no rendering state so the HUD logic also runs headless.
type Panel struct {
	source   parameterProvider
	snapshot core.ParameterSnapshot
	controls []controlState

	intSetter    core.IntParameterSetter
	boolSetter   core.BoolParameterSetter
	choiceSetter core.ChoiceParameterSetter
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue  int
	boolValue bool
	hasValue  bool
}

// NewPanel inspects source for the optional control and setter interfaces.
func NewPanel(source parameterProvider) *Panel {
	p := &Panel{source: source}
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			p.controls[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := source.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := source.(core.BoolParameterSetter); ok {
		p.boolSetter = setter
	}
	if setter, ok := source.(core.ChoiceParameterSetter); ok {
		p.choiceSetter = setter
	}
	p.Refresh()
	return p
}

// Refresh pulls a new snapshot and updates the cached control values.
func (p *Panel) Refresh() {
	if p.source == nil {
		p.snapshot = core.ParameterSnapshot{}
	} else {
		p.snapshot = p.source.Parameters()
	}
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := p.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.boolValue = parsed
			state.value = onOff(parsed)
			state.hasValue = true
		case core.ParamTypeChoice:
			if indexOf(state.control.Options, param.Value) < 0 {
				continue
			}
			state.value = param.Value
			state.hasValue = true
		}
	}
}

// Snapshot returns the last refreshed snapshot.
func (p *Panel) Snapshot() core.ParameterSnapshot { return p.snapshot }

// Len reports the number of adjustable controls.
func (p *Panel) Len() int { return len(p.controls) }

// Control returns the i-th control description.
func (p *Panel) Control(i int) core.ParameterControl { return p.controls[i].control }

// Value returns the display value of the i-th control and whether it is known.
func (p *Panel) Value(i int) (string, bool) {
	return p.controls[i].value, p.controls[i].hasValue
}

// StatusLines renders the non-empty text parameters as "Label value" lines.
func (p *Panel) StatusLines() []string {
	var lines []string
	for _, group := range p.snapshot.Groups {
		for _, param := range group.Params {
			if param.Type != core.ParamTypeText || param.Value == "" {
				continue
			}
			lines = append(lines, param.Label+" "+param.Value)
		}
	}
	return lines
}

// CanAdjust reports whether Adjust(i, direction) would reach the setter.
func (p *Panel) CanAdjust(i, direction int) bool {
	if i < 0 || i >= len(p.controls) || direction == 0 {
		return false
	}
	state := &p.controls[i]
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return false
		}
		if state.control.HasMin && direction < 0 && state.intValue <= state.control.Min {
			return false
		}
		if state.control.HasMax && direction > 0 && state.intValue >= state.control.Max {
			return false
		}
		return true
	case core.ParamTypeBool:
		return p.boolSetter != nil
	case core.ParamTypeChoice:
		return p.choiceSetter != nil && len(state.control.Options) > 1
	}
	return false
}

// Adjust steps the i-th control. Ints move by their step and a step that
// overshoots a bound lands on the bound. Bools toggle and choices cycle
// through their options in either direction.
func (p *Panel) Adjust(i, direction int) bool {
	if !p.CanAdjust(i, direction) {
		return false
	}
	state := &p.controls[i]
	switch state.control.Type {
	case core.ParamTypeInt:
		target := state.intValue + direction*intStep(state.control)
		if state.control.HasMin && target < state.control.Min {
			target = state.control.Min
		}
		if state.control.HasMax && target > state.control.Max {
			target = state.control.Max
		}
		if target == state.intValue || !p.intSetter.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.value = strconv.Itoa(target)
	case core.ParamTypeBool:
		target := !state.boolValue
		if !p.boolSetter.SetBoolParameter(state.control.Key, target) {
			return false
		}
		state.boolValue = target
		state.value = onOff(target)
	case core.ParamTypeChoice:
		opts := state.control.Options
		idx := indexOf(opts, state.value)
		next := ((idx+direction)%len(opts) + len(opts)) % len(opts)
		if !p.choiceSetter.SetChoiceParameter(state.control.Key, opts[next]) {
			return false
		}
		state.value = opts[next]
	}
	return true
}

func intStep(ctrl core.ParameterControl) int {
	if ctrl.Step <= 0 {
		return 1
	}
	return ctrl.Step
}

func indexOf(options []string, value string) int {
	for i, opt := range options {
		if opt == value {
			return i
		}
	}
	return -1
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

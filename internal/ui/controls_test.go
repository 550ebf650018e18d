package ui

import (
	"strconv"
	"testing"

	"map-tools/internal/core"

	"github.com/google/go-cmp/cmp"
)

type fakeSource struct {
	rows  int
	hex   bool
	brush string
	hover string
}

func (f *fakeSource) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Value: strconv.Itoa(f.rows)},
			{Key: "hex", Label: "Hex grid", Type: core.ParamTypeBool, Value: strconv.FormatBool(f.hex)},
			{Key: "brush", Label: "Brush", Type: core.ParamTypeChoice, Value: f.brush},
		}},
		{Name: "Status", Params: []core.Parameter{
			{Key: "hover", Label: "Hovering over", Type: core.ParamTypeText, Value: f.hover},
			{Key: "error", Label: "Error", Type: core.ParamTypeText},
		}},
	}}
}

func (f *fakeSource) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Step: 2, Min: 1, HasMin: true, Max: 6, HasMax: true},
		{Key: "hex", Label: "Hex grid", Type: core.ParamTypeBool},
		{Key: "brush", Label: "Brush", Type: core.ParamTypeChoice, Options: []string{"ocean", "sand", "erase"}},
	}
}

func (f *fakeSource) SetIntParameter(key string, value int) bool {
	if key != "rows" {
		return false
	}
	f.rows = value
	return true
}

func (f *fakeSource) SetBoolParameter(key string, value bool) bool {
	if key != "hex" {
		return false
	}
	f.hex = value
	return true
}

func (f *fakeSource) SetChoiceParameter(key, value string) bool {
	if key != "brush" {
		return false
	}
	f.brush = value
	return true
}

func TestPanelReadsValues(t *testing.T) {
	src := &fakeSource{rows: 3, brush: "sand", hover: "1, 2"}
	p := NewPanel(src)
	if p.Len() != 3 {
		t.Fatalf("Len() = %d", p.Len())
	}
	var got []string
	for i := 0; i < p.Len(); i++ {
		v, ok := p.Value(i)
		if !ok {
			t.Fatalf("control %s has no value", p.Control(i).Key)
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]string{"3", "off", "sand"}, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Hovering over 1, 2"}, p.StatusLines()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestPanelIntBounds(t *testing.T) {
	src := &fakeSource{rows: 3, brush: "ocean"}
	p := NewPanel(src)
	if !p.Adjust(0, 1) || src.rows != 5 {
		t.Fatalf("rows after +1 = %d", src.rows)
	}
	// 5+2 clamps to the max of 6.
	if !p.Adjust(0, 1) || src.rows != 6 {
		t.Fatalf("rows after clamp = %d", src.rows)
	}
	if p.CanAdjust(0, 1) || p.Adjust(0, 1) {
		t.Fatal("adjusting past max should be refused")
	}
	src.rows = 1
	p.Refresh()
	if p.CanAdjust(0, -1) {
		t.Fatal("adjusting below min should be refused")
	}

	// A step that would undershoot the min stops on it.
	src.rows = 2
	p.Refresh()
	if !p.CanAdjust(0, -1) || !p.Adjust(0, -1) || src.rows != 1 {
		t.Fatalf("rows after clamping to min = %d", src.rows)
	}
}

func TestPanelToggleAndCycle(t *testing.T) {
	src := &fakeSource{rows: 2, brush: "ocean"}
	p := NewPanel(src)
	if !p.Adjust(1, -1) || !src.hex {
		t.Fatal("bool control should toggle in either direction")
	}
	if !p.Adjust(2, -1) || src.brush != "erase" {
		t.Fatalf("brush after cycling back = %q", src.brush)
	}
	if !p.Adjust(2, 1) || src.brush != "ocean" {
		t.Fatalf("brush after cycling forward = %q", src.brush)
	}
}

func TestPanelUnknownValue(t *testing.T) {
	src := &fakeSource{rows: 2, brush: "lava"}
	p := NewPanel(src)
	if v, ok := p.Value(2); ok || v != "--" {
		t.Fatalf("unknown choice = %q, %v", v, ok)
	}
	if p.CanAdjust(2, 1) {
		t.Fatal("controls without a value cannot be adjusted")
	}
}

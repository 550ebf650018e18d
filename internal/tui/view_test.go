package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"map-tools/internal/app"
	"map-tools/internal/core"
	"map-tools/internal/grid"
	"map-tools/internal/render"

	"github.com/gdamore/tcell/v2"
)

func newTestView(t *testing.T, rows, cols int, mode app.EditMode) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 24)

	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = rows, cols
	cfg.Mode = string(mode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ed, err := app.NewEditor(cfg, logger)
	if err != nil {
		t.Fatalf("NewEditor: %v", err)
	}
	return NewView(screen, ed, logger), screen
}

func readText(screen tcell.SimulationScreen, x, y, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		ch, _, _, _ := screen.GetContent(x+i, y)
		b.WriteRune(ch)
	}
	return b.String()
}

// cellOf returns the top-left terminal cell of the tile at c in square layout.
func cellOf(c core.Coordinate) (int, int) {
	return gridOrigin.X + c.Col*TileWidth, gridOrigin.Y + c.Row*TileHeight
}

func TestViewDrawsHoverAndStatus(t *testing.T) {
	v, screen := newTestView(t, 2, 3, app.ModeView)
	x, y := cellOf(core.At(1, 0))
	v.HandleMouse(x+2, y+1, tcell.ButtonNone)
	v.Draw()

	if got := readText(screen, x, y, 3); got != "(?)" {
		t.Fatalf("hovered tile label = %q", got)
	}
	statusY := gridOrigin.Y + 2*TileHeight + 1
	if got := readText(screen, gridOrigin.X, statusY, 18); got != "Hovering over 1, 0" {
		t.Fatalf("status line = %q", got)
	}
	if got := readText(screen, gridOrigin.X, statusY+1, 18); got != "Selected tile none" {
		t.Fatalf("selection line = %q", got)
	}
}

func TestViewMouseClickAndClear(t *testing.T) {
	v, screen := newTestView(t, 2, 2, app.ModeView)
	x, y := cellOf(core.At(0, 1))
	v.HandleMouse(x, y, tcell.Button1)
	v.HandleMouse(x, y, tcell.Button1)
	v.Draw()
	if sel, ok := v.editor.Engine().Selected(); !ok || sel != core.At(0, 1) {
		t.Fatalf("selected = %v, %v", sel, ok)
	}
	if got := readText(screen, x, y, 3); got != "[?]" {
		t.Fatalf("selected tile label = %q", got)
	}

	v.HandleMouse(x, y, tcell.ButtonNone)
	v.HandleMouse(x, y, tcell.Button2)
	if _, ok := v.editor.Engine().Selected(); ok {
		t.Fatal("right press should clear the selection")
	}

	// Leaving the grid drops the hover.
	v.HandleMouse(50, 20, tcell.ButtonNone)
	if _, ok := v.editor.Engine().Hover(); ok {
		t.Fatal("hover should clear outside the grid")
	}
}

func TestViewPaintsInEditMode(t *testing.T) {
	v, screen := newTestView(t, 2, 2, app.ModeView)
	if v.HandleKey(tcell.KeyRune, 'e') || v.HandleKey(tcell.KeyRune, '2') {
		t.Fatal("mode and brush keys must not quit")
	}
	x, y := cellOf(core.At(1, 1))
	v.HandleMouse(x, y, tcell.Button1)
	v.HandleMouse(x, y, tcell.ButtonNone)
	v.HandleMouse(50, 20, tcell.ButtonNone)
	v.Draw()

	tile, _ := v.editor.Engine().TileAt(core.At(1, 1))
	if terrain, ok := tile.Terrain(); !ok || terrain != grid.Sand {
		t.Fatalf("terrain = %v, %v", terrain, ok)
	}
	ch, _, style, _ := screen.GetContent(x+1, y)
	_, bg, _ := style.Decompose()
	if ch != '.' {
		t.Fatalf("sand glyph = %q", ch)
	}
	if want := rgb(render.FillColor(tile)); bg != want {
		t.Fatalf("background = %v, want %v", bg, want)
	}
}

func TestViewKeys(t *testing.T) {
	v, screen := newTestView(t, 2, 2, app.ModeView)
	v.HandleKey(tcell.KeyDown, 0)
	v.HandleKey(tcell.KeyRight, 0)
	if got := v.editor.Engine().Shape(); got != (core.Shape{Rows: 3, Cols: 3}) {
		t.Fatalf("shape after arrows = %v", got)
	}

	v.HandleKey(tcell.KeyRune, 'h')
	v.Draw()
	if !v.editor.Engine().Shape().IsHex {
		t.Fatal("h should switch to hex layout")
	}
	// Odd columns sit half a tile lower.
	x, y := cellOf(core.At(1, 0))
	if got := readText(screen, x, y+1, 3); got != " ? " {
		t.Fatalf("shifted hex tile = %q", got)
	}

	v.HandleKey(tcell.KeyUp, 0)
	v.HandleKey(tcell.KeyUp, 0)
	v.HandleKey(tcell.KeyUp, 0)
	if v.editor.Engine().Shape().Rows != 1 || v.editor.LastError() == nil {
		t.Fatalf("removing the last row should be rejected, rows=%d err=%v", v.editor.Engine().Shape().Rows, v.editor.LastError())
	}

	if v.HandleKey(tcell.KeyRune, 'x') {
		t.Fatal("unbound key must not quit")
	}
	if !v.HandleKey(tcell.KeyRune, 'q') || !v.HandleKey(tcell.KeyEscape, 0) {
		t.Fatal("q and Esc should quit")
	}
}

func TestViewDirtyTracking(t *testing.T) {
	v, _ := newTestView(t, 2, 2, app.ModeView)
	if !v.Dirty() {
		t.Fatal("new view should need a draw")
	}
	v.Draw()
	if v.Dirty() {
		t.Fatal("Draw should clear the dirty flag")
	}
	v.HandleMouse(50, 20, tcell.ButtonNone)
	if v.Dirty() {
		t.Fatal("moving outside the grid changes nothing")
	}
	x, y := cellOf(core.At(0, 0))
	v.HandleMouse(x, y, tcell.ButtonNone)
	if !v.Dirty() {
		t.Fatal("hover change should mark the view dirty")
	}
}

func TestViewRunStopsOnCancel(t *testing.T) {
	v, screen := newTestView(t, 2, 2, app.ModeView)
	// More unbound keys than the event buffer holds, so the poller is still
	// sending when Run returns.
	for i := 0; i < 40; i++ {
		screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := v.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}
}

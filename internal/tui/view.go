// Package tui renders the tile grid in a terminal and feeds terminal input to
// the editor.
package tui

import (
	"context"
	"image"
	"image/color"
	"log/slog"

	"map-tools/internal/app"
	"map-tools/internal/grid"
	"map-tools/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Each tile covers TileWidth x TileHeight terminal cells.
const (
	TileWidth  = 4
	TileHeight = 2
)

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	gridOrigin  = image.Pt(1, 1)
)

// View draws the editor's grid on a tcell screen.
type View struct {
	screen tcell.Screen
	editor *app.Editor
	log    *slog.Logger

	buttons tcell.ButtonMask
	dirty   bool
}

// NewView binds editor to screen. The screen must already be initialized.
func NewView(screen tcell.Screen, editor *app.Editor, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	v := &View{screen: screen, editor: editor, log: logger, dirty: true}
	editor.Engine().Dispatcher().SubscribeAll(grid.ListenerFunc(func(n grid.Notification) {
		v.dirty = true
	}))
	return v
}

func (v *View) layout() render.Layout {
	return render.Layout{
		Shape:  v.editor.Engine().Shape(),
		TileW:  TileWidth,
		TileH:  TileHeight,
		Origin: gridOrigin,
	}
}

// Dirty reports whether the grid changed since the last Draw.
func (v *View) Dirty() bool { return v.dirty }

// Draw repaints the grid and the status lines.
func (v *View) Draw() {
	v.screen.Clear()
	layout := v.layout()
	for _, tile := range v.editor.Engine().Tiles() {
		v.drawTile(layout.TileRect(tile.Coordinate()), tile)
	}
	y := layout.Bounds().Max.Y + 1
	for _, line := range v.editor.StatusLines() {
		style := statusStyle
		if len(line) > 6 && line[:6] == "Error:" {
			style = errorStyle
		}
		v.drawText(gridOrigin.X, y, line, style)
		y++
	}
	v.screen.Show()
	v.dirty = false
}

func (v *View) drawTile(r image.Rectangle, tile grid.Tile) {
	style := tcell.StyleDefault.Background(rgb(render.FillColor(tile))).Foreground(tcell.ColorBlack)
	label := [TileWidth]rune{' ', render.Glyph(tile), ' ', ' '}
	switch tile.Highlight() {
	case grid.Selected:
		label[0], label[2] = '[', ']'
	case grid.Hovered:
		label[0], label[2] = '(', ')'
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ch := ' '
			if y == r.Min.Y {
				ch = label[x-r.Min.X]
			}
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		v.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// HandleMouse feeds a pointer position and button state to the editor. A left
// press on a tile clicks it; a right press clears the selection.
func (v *View) HandleMouse(x, y int, buttons tcell.ButtonMask) {
	layout := v.layout()
	c, onTile := layout.CoordinateAt(x, y)
	inGrid := image.Pt(x, y).In(layout.Bounds())
	v.editor.PointerMoved(c, onTile, inGrid)

	pressed := buttons &^ v.buttons
	v.buttons = buttons
	if pressed&tcell.Button1 != 0 && onTile {
		v.editor.PointerPressed(c)
	}
	if pressed&tcell.Button2 != 0 {
		v.editor.ClearSelection()
	}
	v.flush()
}

// HandleKey applies a key press and reports whether the view should quit.
func (v *View) HandleKey(key tcell.Key, r rune) bool {
	var action app.Action
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		action = app.ActionClear
	case tcell.KeyUp:
		action = app.ActionRemoveRow
	case tcell.KeyDown:
		action = app.ActionAddRow
	case tcell.KeyLeft:
		action = app.ActionRemoveCol
	case tcell.KeyRight:
		action = app.ActionAddCol
	case tcell.KeyRune:
		a, ok := app.ActionForRune(r)
		if !ok {
			return false
		}
		action = a
	default:
		return false
	}
	if action == app.ActionQuit {
		return true
	}
	v.editor.Do(action)
	v.flush()
	// Status text such as the mode or a rejected shape is not a grid change.
	v.dirty = true
	return false
}

func (v *View) flush() {
	if err := v.editor.Flush(); err != nil {
		v.log.Warn("events rejected", "err", err)
	}
}

// Run draws and processes terminal events until the user quits or ctx is
// done. It enables mouse reporting on the screen.
func (v *View) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	defer v.screen.DisableMouse()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				v.HandleMouse(x, y, ev.Buttons())
			case *tcell.EventResize:
				v.screen.Sync()
				v.dirty = true
			}
			if v.dirty {
				v.Draw()
			}
		}
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

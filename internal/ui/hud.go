//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the grid view.
type HUD struct {
	panel        *Panel
	width        int
	img          *ebiten.Image
	lastHeight   int
	panelOffsetX int
	title        string

	rects []controlRects
}

type controlRects struct {
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for source with the given panel width.
func NewHUD(source parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{panel: NewPanel(source), width: width, title: "Map Controls"}
	h.layoutControls()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and handles clicks on the panel buttons. It
// reports whether the click landed on the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.panel.Refresh()
	return h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.img == nil || h.lastHeight != height {
		if h.img != nil {
			h.img.Deallocate()
		}
		h.img = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.img.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i, r := range h.rects {
		if pointInRect(px, my, r.minusRect) {
			h.panel.Adjust(i, -1)
			return true
		}
		if pointInRect(px, my, r.plusRect) {
			h.panel.Adjust(i, 1)
			return true
		}
	}
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.img, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if h.panel.Len() == 0 {
		text.Draw(h.img, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i, r := range h.rects {
		ctrl := h.panel.Control(i)
		labelY := r.top + labelBaseline
		text.Draw(h.img, ctrl.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value, known := h.panel.Value(i)
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !known {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, value)
		valueX := r.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.img, value, face, valueX, labelY, valueColor)

		h.drawButton(r.minusRect, "-", h.panel.CanAdjust(i, -1))
		h.drawButton(r.plusRect, "+", h.panel.CanAdjust(i, 1))
	}

	y := controlsTop + len(h.rects)*lineHeight + statusSpacing
	for _, line := range h.panel.StatusLines() {
		text.Draw(h.img, line, face, panelPadding, y, color.RGBA{R: 180, G: 200, B: 220, A: 255})
		y += statusLineHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.img, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	h.rects = make([]controlRects, h.panel.Len())
	for i := range h.rects {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.rects[i] = controlRects{top: top, minusRect: minusRect, plusRect: plusRect}
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding     = 12
	lineHeight       = 36
	buttonSize       = 24
	buttonGap        = 6
	headerBaseline   = 18
	labelBaseline    = 24
	infoSpacing      = 36
	statusSpacing    = 20
	statusLineHeight = 18
	controlsTop      = panelPadding + headerBaseline + 14
)

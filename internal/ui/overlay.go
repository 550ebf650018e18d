//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"map-tools/internal/core"
	"map-tools/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// minCoordLabelSize is the smallest tile edge that fits a "c,r" label.
const minCoordLabelSize = 28

// Overlay draws optional debugging visuals on top of the grid.
type Overlay struct {
	showGrid   bool
	showCoords bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles overlay layers: G for tile outlines, C for coordinates.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCoords = !o.showCoords
	}
}

// Draw renders the enabled layers for the grid described by layout.
func (o *Overlay) Draw(screen *ebiten.Image, layout render.Layout) {
	shape := layout.Shape
	if shape.Validate() != nil {
		return
	}
	if o.showGrid {
		o.drawGridLines(screen, layout)
	}
	if o.showCoords && layout.TileW >= minCoordLabelSize && layout.TileH >= minCoordLabelSize {
		o.drawCoordinates(screen, layout)
	}
}

func (o *Overlay) drawGridLines(screen *ebiten.Image, layout render.Layout) {
	col := color.RGBA{R: 255, G: 255, B: 255, A: 90}
	if !layout.Shape.IsHex {
		b := layout.Bounds()
		for c := 0; c <= layout.Shape.Cols; c++ {
			x := float32(b.Min.X + c*layout.TileW)
			vector.StrokeLine(screen, x, float32(b.Min.Y), x, float32(b.Max.Y), 1, col, false)
		}
		for r := 0; r <= layout.Shape.Rows; r++ {
			y := float32(b.Min.Y + r*layout.TileH)
			vector.StrokeLine(screen, float32(b.Min.X), y, float32(b.Max.X), y, 1, col, false)
		}
		return
	}
	for r := 0; r < layout.Shape.Rows; r++ {
		for c := 0; c < layout.Shape.Cols; c++ {
			rect := layout.TileRect(core.At(c, r))
			vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 1, col, false)
		}
	}
}

func (o *Overlay) drawCoordinates(screen *ebiten.Image, layout render.Layout) {
	face := basicfont.Face7x13
	col := color.RGBA{R: 240, G: 240, B: 200, A: 200}
	for r := 0; r < layout.Shape.Rows; r++ {
		for c := 0; c < layout.Shape.Cols; c++ {
			rect := layout.TileRect(core.At(c, r))
			text.Draw(screen, fmt.Sprintf("%d,%d", c, r), face, rect.Min.X+3, rect.Max.Y-4, col)
		}
	}
}

//go:build ebiten

package render

import (
	"image/color"

	"map-tools/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// minLabelSize is the smallest tile edge that still fits the "???" label.
const minLabelSize = 24

var gapColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// GridPainter draws tiles. Square grids are uploaded as one pixel per tile
// and scaled up; hex grids are drawn tile by tile.
type GridPainter struct {
	cols, rows int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates an empty painter; buffers grow on first draw.
func NewGridPainter() *GridPainter { return &GridPainter{} }

func (gp *GridPainter) ensure(cols, rows int) {
	if gp.img != nil && gp.cols == cols && gp.rows == rows {
		return
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.cols, gp.rows = cols, rows
	gp.img = ebiten.NewImage(cols, rows)
	gp.buf = make([]byte, 4*cols*rows)
}

// Draw renders tiles (row-major, as returned by the engine) into dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, layout Layout, tiles []grid.Tile) {
	shape := layout.Shape
	if shape.Validate() != nil || len(tiles) != shape.Rows*shape.Cols {
		return
	}
	if shape.IsHex {
		for _, tile := range tiles {
			r := layout.TileRect(tile.Coordinate())
			vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), FillColor(tile), false)
		}
	} else {
		gp.ensure(shape.Cols, shape.Rows)
		fillTileRGBA(gp.buf, tiles)
		gp.img.WritePixels(gp.buf)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(layout.TileW), float64(layout.TileH))
		op.GeoM.Translate(float64(layout.Origin.X), float64(layout.Origin.Y))
		dst.DrawImage(gp.img, op)
	}

	face := basicfont.Face7x13
	for _, tile := range tiles {
		r := layout.TileRect(tile.Coordinate())
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())
		vector.StrokeRect(dst, x, y, w, h, 1, gapColor, false)
		if col, ok := HighlightColor(tile.Highlight()); ok {
			vector.StrokeRect(dst, x+1.5, y+1.5, w-3, h-3, 3, col, false)
		}
		if tile.Quantum() && r.Dx() >= minLabelSize && r.Dy() >= minLabelSize {
			label := "???"
			bounds := text.BoundString(face, label)
			tx := r.Min.X + (r.Dx()-bounds.Dx())/2
			ty := r.Min.Y + (r.Dy()+bounds.Dy())/2
			text.Draw(dst, label, face, tx, ty, color.RGBA{R: 170, G: 170, B: 190, A: 255})
		}
	}
}

//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log/slog"

	"map-tools/internal/render"
	"map-tools/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	margin        = 8
	statusLineGap = 16
	statusLines   = 4

	minScreenHeight = 420
)

var keyActions = map[ebiten.Key]Action{
	ebiten.KeyQ:          ActionQuit,
	ebiten.KeyEscape:     ActionQuit,
	ebiten.KeyBackspace:  ActionClear,
	ebiten.KeyE:          ActionToggleEdit,
	ebiten.KeyH:          ActionToggleHex,
	ebiten.KeyArrowDown:  ActionAddRow,
	ebiten.KeyArrowUp:    ActionRemoveRow,
	ebiten.KeyArrowRight: ActionAddCol,
	ebiten.KeyArrowLeft:  ActionRemoveCol,
	ebiten.KeyDigit0:     ActionErase,
	ebiten.KeyDigit1:     ActionOcean,
	ebiten.KeyDigit2:     ActionSand,
	ebiten.KeyDigit3:     ActionGrass,
	ebiten.KeyDigit4:     ActionForest,
	ebiten.KeyDigit5:     ActionStone,
}

// Game adapts the editor to the ebiten.Game interface.
type Game struct {
	editor  *Editor
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	tileSize int
}

// New constructs a Game for the provided editor.
func New(editor *Editor, cfg *Config, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		editor:   editor,
		painter:  render.NewGridPainter(),
		hud:      ui.NewHUD(editor, cfg.PanelWidth),
		overlay:  ui.NewOverlay(),
		log:      logger,
		tileSize: cfg.TileSize,
	}
}

func (g *Game) layout() render.Layout {
	return render.Layout{
		Shape:  g.editor.Engine().Shape(),
		TileW:  g.tileSize,
		TileH:  g.tileSize,
		Origin: image.Pt(margin, margin),
	}
}

// Update translates input into editor calls and applies them.
func (g *Game) Update() error {
	for key, action := range keyActions {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if action == ActionQuit {
			return ebiten.Termination
		}
		g.editor.Do(action)
	}
	g.overlay.Update()

	layout := g.layout()
	panelX := g.gridWidth()
	onPanel := g.hud.Update(panelX)

	mx, my := ebiten.CursorPosition()
	c, onTile := layout.CoordinateAt(mx, my)
	inGrid := image.Pt(mx, my).In(layout.Bounds())
	g.editor.PointerMoved(c, onTile, inGrid)
	if !onPanel {
		if onTile && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.editor.PointerPressed(c)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.editor.ClearSelection()
		}
	}

	if err := g.editor.Flush(); err != nil {
		g.log.Warn("events rejected", "err", err)
	}
	return nil
}

// Draw renders the grid, overlay, status lines and control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 10, A: 255})
	layout := g.layout()
	g.painter.Draw(screen, layout, g.editor.Engine().Tiles())
	g.overlay.Draw(screen, layout)

	face := basicfont.Face7x13
	y := layout.Bounds().Max.Y + statusLineGap
	for _, line := range g.editor.StatusLines() {
		text.Draw(screen, line, face, margin, y, color.RGBA{R: 210, G: 210, B: 220, A: 255})
		y += statusLineGap
	}

	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.gridWidth(), h)
}

func (g *Game) gridWidth() int {
	return g.layout().Bounds().Max.X + margin
}

// Layout returns the logical screen size, which follows the grid shape.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.layout().Bounds()
	w := g.gridWidth() + g.hud.Width()
	h := b.Max.Y + statusLineGap*(statusLines+1)
	return w, max(h, minScreenHeight)
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"map-tools/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger, err := app.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	editor, err := app.NewEditor(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(editor, cfg, logger)

	ebiten.SetWindowTitle("map-tools")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	logger.Info("editor started", "shape", cfg.Shape().String(), "mode", cfg.Mode, "brush", cfg.Brush)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"map-tools/internal/app"
	"map-tools/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	// Logs are held until the screen is released.
	var logs bytes.Buffer
	logger, err := app.NewLogger(cfg.LogLevel, &logs)
	if err != nil {
		log.Fatal(err)
	}
	editor, err := app.NewEditor(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	view := tui.NewView(screen, editor, logger)
	err = view.Run(ctx)
	screen.Fini()
	os.Stderr.Write(logs.Bytes())
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}

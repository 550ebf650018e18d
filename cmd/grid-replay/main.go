package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"map-tools/internal/app"
	"map-tools/internal/core"
	"map-tools/internal/grid"
	"map-tools/internal/render"
	"map-tools/internal/script"
)

func main() {
	var (
		path     string
		logLevel string
	)
	flag.StringVar(&path, "script", "", "YAML script to replay")
	flag.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: grid-replay -script session.yaml [-log-level debug]")
		os.Exit(2)
	}

	logger, err := app.NewLogger(logLevel, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	s, err := script.LoadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	engine := grid.NewEngine(grid.WithLogger(logger))
	engine.Dispatcher().SubscribeAll(grid.ListenerFunc(func(n grid.Notification) {
		logger.Debug("notification", "type", n.Type, "generation", n.Generation)
	}))
	replayErr := script.Replay(s, engine, logger)

	if err := render.WriteASCII(os.Stdout, engine); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Hovering over " + describe(engine.Hover()))
	fmt.Println("Selected tile " + describe(engine.Selected()))

	if replayErr != nil {
		fmt.Fprintln(os.Stderr, replayErr)
		if errors.Is(replayErr, core.ErrInvalidShape) {
			os.Exit(1)
		}
	}
}

func describe(c core.Coordinate, ok bool) string {
	if !ok {
		return "none"
	}
	return c.String()
}

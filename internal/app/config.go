package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"map-tools/internal/core"
	"map-tools/internal/grid"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line and file parameters for the editor.
type Config struct {
	Rows       int    `yaml:"rows"`
	Cols       int    `yaml:"cols"`
	Hex        bool   `yaml:"hex"`
	Mode       string `yaml:"mode"`
	Brush      string `yaml:"brush"`
	TileSize   int    `yaml:"tile_size"`
	PanelWidth int    `yaml:"panel_width"`
	TPS        int    `yaml:"tps"`
	LogLevel   string `yaml:"log_level"`

	File string `yaml:"-"`
}

// NewConfig returns a Config populated with the editor's defaults.
func NewConfig() *Config {
	return &Config{
		Rows:       10,
		Cols:       10,
		Mode:       string(ModeView),
		Brush:      grid.Eraser.String(),
		TileSize:   32,
		PanelWidth: 240,
		TPS:        60,
		LogLevel:   "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional YAML config file; flags override its values")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.BoolVar(&c.Hex, "hex", c.Hex, "offset odd columns into a hex layout")
	fs.StringVar(&c.Mode, "mode", c.Mode, "initial edit mode: view or edit")
	fs.StringVar(&c.Brush, "brush", c.Brush, "initial brush: ocean, sand, grass, forest, stone or erase")
	fs.IntVar(&c.TileSize, "tile", c.TileSize, "tile edge in pixels")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "control panel width in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// ApplyFile loads the YAML file at path and copies every value that was not
// set explicitly on fs. A nil fs applies every value in the file.
func (c *Config) ApplyFile(path string, fs *flag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	fileCfg := *c
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	explicit := map[string]bool{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	}
	apply := func(name string, set func()) {
		if !explicit[name] {
			set()
		}
	}
	apply("rows", func() { c.Rows = fileCfg.Rows })
	apply("cols", func() { c.Cols = fileCfg.Cols })
	apply("hex", func() { c.Hex = fileCfg.Hex })
	apply("mode", func() { c.Mode = fileCfg.Mode })
	apply("brush", func() { c.Brush = fileCfg.Brush })
	apply("tile", func() { c.TileSize = fileCfg.TileSize })
	apply("panel", func() { c.PanelWidth = fileCfg.PanelWidth })
	apply("tps", func() { c.TPS = fileCfg.TPS })
	apply("log-level", func() { c.LogLevel = fileCfg.LogLevel })
	return nil
}

// Shape returns the configured grid shape.
func (c *Config) Shape() core.Shape {
	return core.Shape{Rows: c.Rows, Cols: c.Cols, IsHex: c.Hex}
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if err := c.Shape().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := grid.ParseBrush(c.Brush); err != nil {
		return fmt.Errorf("%w: brush: %w", ErrInvalidConfig, err)
	}
	if c.TileSize < 4 {
		return fmt.Errorf("%w: tile size must be at least 4, got %d", ErrInvalidConfig, c.TileSize)
	}
	if c.PanelWidth < 0 {
		return fmt.Errorf("%w: panel width must not be negative, got %d", ErrInvalidConfig, c.PanelWidth)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Load binds a fresh Config to fs, parses args, merges the optional config
// file and validates the result.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		if err := cfg.ApplyFile(cfg.File, fs); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/snake/grid"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Loop      LoopConfig      `yaml:"loop"`
	Snake     SnakeConfig     `yaml:"snake"`
	Food      FoodConfig      `yaml:"food"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Title     string `yaml:"title"`
	HUDHeight int    `yaml:"hud_height"` // Strip below the board for score and restart
	TargetFPS int    `yaml:"target_fps"`
}

// GridConfig holds the play field dimensions in pixels.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
	AreaSize int `yaml:"area_size"`
}

// LoopConfig holds update loop timing.
type LoopConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// SnakeConfig holds the starting snake.
type SnakeConfig struct {
	OriginX   int    `yaml:"origin_x"`
	OriginY   int    `yaml:"origin_y"`
	Direction string `yaml:"direction"`
}

// FoodConfig holds food placement settings.
type FoodConfig struct {
	AvoidSnake bool `yaml:"avoid_snake"` // Resample food that lands on the snake
}

// TelemetryConfig holds telemetry settings.
type TelemetryConfig struct {
	LogRounds bool `yaml:"log_rounds"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Grid         grid.Grid
	Origin       grid.Cell
	Direction    grid.Direction
	TickPeriod   time.Duration
	ScreenWidth  int
	ScreenHeight int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// computeDerived validates the loaded values and fills Derived.
func (c *Config) computeDerived() error {
	if c.Grid.CellSize <= 0 {
		return errors.New("grid.cell_size must be positive")
	}
	if c.Grid.AreaSize <= 0 || c.Grid.AreaSize%c.Grid.CellSize != 0 {
		return fmt.Errorf("grid.area_size %d must be a positive multiple of cell_size %d", c.Grid.AreaSize, c.Grid.CellSize)
	}
	if c.Loop.TickMS <= 0 {
		return errors.New("loop.tick_ms must be positive")
	}

	g := grid.New(c.Grid.CellSize, c.Grid.AreaSize)
	origin := grid.Cell{X: c.Snake.OriginX, Y: c.Snake.OriginY}
	if !g.Contains(origin) || !g.Aligned(origin) {
		return fmt.Errorf("snake origin (%d, %d) must be a grid-aligned cell inside the board", origin.X, origin.Y)
	}
	dir, err := grid.ParseDirection(c.Snake.Direction)
	if err != nil {
		return fmt.Errorf("snake.direction: %w", err)
	}

	c.Derived.Grid = g
	c.Derived.Origin = origin
	c.Derived.Direction = dir
	c.Derived.TickPeriod = time.Duration(c.Loop.TickMS) * time.Millisecond
	c.Derived.ScreenWidth = c.Grid.AreaSize
	c.Derived.ScreenHeight = c.Grid.AreaSize + c.Screen.HUDHeight
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

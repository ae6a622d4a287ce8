// Package game wires the snake state, update loop, input handling, and
// display list together. It has no graphics dependency; the ui package
// draws what the display list holds and feeds keys and frame time in.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/renderer"
	"github.com/pthm-cable/snake/state"
	"github.com/pthm-cable/snake/telemetry"
)

// Options holds runtime options for game initialization.
type Options struct {
	Seed int64
	// Config defaults to config.Cfg() when nil.
	Config *config.Config
	// Logger defaults to slog.Default() when nil.
	Logger *slog.Logger
	// Output may be nil to disable file output.
	Output *telemetry.OutputManager
}

// Game holds the complete game state.
type Game struct {
	cfg    *config.Config
	rng    *rand.Rand
	logger *slog.Logger

	state   *state.State
	display *renderer.DisplayList
	ticker  *Ticker

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector

	restartVisible bool
	round          int
}

// NewGame creates a game, wires input once, and runs the first initialize pass.
// The loop does not tick until the first key press.
func NewGame(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		logger:  logger,
		display: renderer.NewDisplayList(cfg.Grid.CellSize),
		ticker:  NewTicker(cfg.Derived.TickPeriod),
		collector: telemetry.NewCollector(
			cfg.Derived.TickPeriod, opts.Output, cfg.Telemetry.LogRounds, logger,
		),
		perf: telemetry.NewPerfCollector(60, cfg.Derived.TickPeriod),
	}
	g.state = g.freshState()
	g.initialize()
	return g
}

func (g *Game) freshState() *state.State {
	return state.New(state.Options{
		Grid:       g.cfg.Derived.Grid,
		Origin:     g.cfg.Derived.Origin,
		Direction:  g.cfg.Derived.Direction,
		AvoidSnake: g.cfg.Food.AvoidSnake,
	})
}

// State returns the current state. Callers must treat it as read-only.
func (g *Game) State() *state.State {
	return g.state
}

// Display returns the display list synchronized on every tick.
func (g *Game) Display() *renderer.DisplayList {
	return g.display
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// RestartVisible reports whether the restart control should be shown.
func (g *Game) RestartVisible() bool {
	return g.restartVisible
}

// Collector returns the session telemetry collector.
func (g *Game) Collector() *telemetry.Collector {
	return g.collector
}

// Perf returns tick timing statistics.
func (g *Game) Perf() telemetry.PerfStats {
	return g.perf.Stats()
}

// TickPeriod returns the fixed loop period.
func (g *Game) TickPeriod() time.Duration {
	return g.ticker.Period()
}

// Round returns the 1-based number of the round in play.
func (g *Game) Round() int {
	return g.round + 1
}

package game

import (
	"time"

	"github.com/pthm-cable/snake/state"
	"github.com/pthm-cable/snake/telemetry"
)

// Ticker turns elapsed frame time into fixed-period ticks.
type Ticker struct {
	period  time.Duration
	acc     time.Duration
	running bool
}

// NewTicker creates a stopped ticker.
func NewTicker(period time.Duration) *Ticker {
	return &Ticker{period: period}
}

// Start begins accumulating time. The first tick fires one full period later.
func (t *Ticker) Start() {
	t.running = true
	t.acc = 0
}

// Stop cancels the ticker and drops any accumulated time.
func (t *Ticker) Stop() {
	t.running = false
	t.acc = 0
}

// Running reports whether the ticker is active.
func (t *Ticker) Running() bool {
	return t.running
}

// Period returns the tick period.
func (t *Ticker) Period() time.Duration {
	return t.period
}

// Advance adds dt and reports whether a tick is due, consuming one period if so.
// Call repeatedly with dt=0 to drain backlog.
func (t *Ticker) Advance(dt time.Duration) bool {
	if !t.running {
		return false
	}
	t.acc += dt
	if t.acc < t.period {
		return false
	}
	t.acc -= t.period
	return true
}

// maxCatchUp bounds how many ticks one Update may run after a stall.
const maxCatchUp = 5

// Update feeds elapsed time to the loop and runs every tick that fell due.
// It returns the number of ticks run.
func (g *Game) Update(dt time.Duration) int {
	n := 0
	for g.ticker.Advance(dt) {
		dt = 0
		g.tick()
		n++
		if n >= maxCatchUp {
			// Drop the rest of a long stall rather than fast-forwarding.
			if g.ticker.Running() {
				g.ticker.Start()
			}
			break
		}
	}
	return n
}

// Step runs exactly one tick if the loop is running, ignoring wall time.
// Headless runs use it to drive the loop as fast as possible.
func (g *Game) Step() bool {
	if !g.ticker.Running() {
		return false
	}
	g.tick()
	return true
}

// tick is the update loop body. A collision found by Advance is only acted
// on at the start of the following tick, so the collision frame is drawn.
func (g *Game) tick() {
	if g.state.GameOver {
		g.stop()
		return
	}

	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseAdvance)
	res := g.state.Advance(g.rng)
	if res.Ate {
		g.logger.Debug("food eaten", "score", g.state.Score, "length", g.state.Len())
	}
	if res.Cause != state.CauseNone {
		g.logger.Debug("collision", "cause", res.Cause.String(), "head_x", g.state.Head().X, "head_y", g.state.Head().Y)
	}

	g.perf.StartPhase(telemetry.PhaseRender)
	g.render()
	g.perf.EndTick()
}

// stop halts the loop on game over and exposes the restart control.
func (g *Game) stop() {
	g.ticker.Stop()
	g.restartVisible = true
	r := g.collector.RecordRound(g.state)
	g.logger.Info("game over",
		"round", r.Number,
		"score", r.Score,
		"length", r.Length,
		"cause", r.Cause,
	)
}

// render synchronizes the display list with the state.
func (g *Game) render() {
	g.display.Sync(g.state.Snake, g.state.Food)
}

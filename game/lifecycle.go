package game

// Phase is the externally visible loop state.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseStopped // Game over seen by the loop; waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	}
	return "not started"
}

// Phase returns the current loop phase.
func (g *Game) Phase() Phase {
	switch {
	case g.restartVisible:
		return PhaseStopped
	case g.state.Started && g.ticker.Running():
		return PhaseRunning
	default:
		return PhaseNotStarted
	}
}

// initialize places the first food and draws the initial frame.
// Input is wired by the caller once per process and never re-registered here.
func (g *Game) initialize() {
	g.state.PlaceFood(g.rng)
	g.render()
}

// Start begins the fixed-interval loop. No-op if already started.
func (g *Game) Start() {
	if g.state.Started {
		return
	}
	g.state.Started = true
	g.ticker.Start()
	g.logger.Info("game started", "round", g.Round(), "tick_period", g.ticker.Period())
}

// Reset replaces the state with a fresh one, hides the restart control,
// re-initializes, and starts the loop again.
func (g *Game) Reset() {
	g.ticker.Stop()
	if g.restartVisible || g.state.GameOver {
		g.round++
	}
	g.state = g.freshState()
	g.restartVisible = false
	g.logger.Info("game reset", "round", g.Round())
	g.initialize()
	g.Start()
}

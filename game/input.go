package game

import "github.com/pthm-cable/snake/grid"

// Key is a frontend-independent key identifier.
type Key uint8

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRestart // Enter or R; only acts while the restart control is shown
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyRestart:
		return "Restart"
	}
	return "Other"
}

// Direction maps an arrow key to its direction.
func (k Key) Direction() (grid.Direction, bool) {
	switch k {
	case KeyUp:
		return grid.Up, true
	case KeyDown:
		return grid.Down, true
	case KeyLeft:
		return grid.Left, true
	case KeyRight:
		return grid.Right, true
	}
	return 0, false
}

// HandleKey processes one key press. Arrow keys change direction unless the
// change would reverse the snake. Any key starts the game if it has not
// started yet.
func (g *Game) HandleKey(k Key) {
	if k == KeyRestart && g.restartVisible {
		g.Reset()
		return
	}

	if d, ok := k.Direction(); ok {
		g.state.SetDirection(d)
	}

	if !g.state.Started {
		g.Start()
	}
}

// HandleKeys processes a batch of key presses in order.
func (g *Game) HandleKeys(keys []Key) {
	for _, k := range keys {
		g.HandleKey(k)
	}
}

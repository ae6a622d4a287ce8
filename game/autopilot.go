package game

import (
	"github.com/pthm-cable/snake/grid"
	"github.com/pthm-cable/snake/state"
)

// autopilotOrder is the tie-break order between equally good moves.
var autopilotOrder = [...]grid.Direction{grid.Up, grid.Right, grid.Down, grid.Left}

// Autopilot is a greedy key source for headless runs: it steers toward the
// food and avoids moves that would collide on the next tick.
type Autopilot struct{}

// NextKey picks the key to press before the next tick.
func (Autopilot) NextKey(s *state.State) Key {
	g := s.Grid()
	head := s.Head()

	best := s.Direction
	bestScore := -1 << 30
	for _, d := range autopilotOrder {
		if d == s.Direction.Opposite() {
			continue
		}
		next := g.Step(head, d)
		score := -manhattan(next, s.Food)
		if !g.Contains(next) || blocked(s, next) {
			score -= 1 << 20
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	return keyFor(best)
}

// blocked reports whether moving into c would hit the body. The tail cell is
// free because it moves away on the same tick.
func blocked(s *state.State, c grid.Cell) bool {
	for i := 0; i < len(s.Snake)-1; i++ {
		if s.Snake[i] == c {
			return true
		}
	}
	return false
}

func manhattan(a, b grid.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func keyFor(d grid.Direction) Key {
	switch d {
	case grid.Up:
		return KeyUp
	case grid.Down:
		return KeyDown
	case grid.Left:
		return KeyLeft
	default:
		return KeyRight
	}
}

package game

import (
	"testing"

	"github.com/pthm-cable/snake/grid"
)

func TestAutopilotSteersTowardFood(t *testing.T) {
	g := newTestGame(t)
	g.state.Food = grid.Cell{X: 160, Y: 40}

	if k := (Autopilot{}).NextKey(g.State()); k != KeyUp {
		t.Errorf("NextKey = %v, want ArrowUp", k)
	}
}

func TestAutopilotAvoidsWall(t *testing.T) {
	g := newTestGame(t)
	g.state.Snake = []grid.Cell{{X: 380, Y: 200}}
	g.state.Direction = grid.Right
	g.state.Food = grid.Cell{X: 380, Y: 200} // Unreachable ahead; must not step off the board

	k := (Autopilot{}).NextKey(g.State())
	d, _ := k.Direction()
	next := g.State().Grid().Step(g.State().Head(), d)
	if !g.State().Grid().Contains(next) {
		t.Errorf("autopilot chose %v into the wall", k)
	}
}

func TestAutopilotNeverReverses(t *testing.T) {
	g := newTestGame(t)
	g.state.Snake = []grid.Cell{{X: 160, Y: 160}, {X: 140, Y: 160}}
	g.state.Direction = grid.Right
	g.state.Food = grid.Cell{X: 0, Y: 160} // Directly behind

	if k := (Autopilot{}).NextKey(g.State()); k == KeyLeft {
		t.Error("autopilot reversed into its own body")
	}
}

func TestHeadlessRoundInvariants(t *testing.T) {
	g := newTestGame(t)
	pilot := Autopilot{}

	g.HandleKey(KeyOther)
	for i := 0; i < 3000 && g.Phase() == PhaseRunning; i++ {
		g.HandleKey(pilot.NextKey(g.State()))

		before := g.State().Len()
		score := g.State().Score
		over := g.State().GameOver
		g.Step()
		if over {
			break
		}

		ate := g.State().Score - score
		if ate < 0 || ate > 1 {
			t.Fatalf("tick %d: score jumped by %d", i, ate)
		}
		if g.State().Len() != before+ate {
			t.Fatalf("tick %d: len %d -> %d with %d food", i, before, g.State().Len(), ate)
		}
		if g.Display().Len() != g.State().Len()+1 {
			t.Fatalf("tick %d: display out of sync", i)
		}
	}

	if g.State().Score == 0 {
		t.Error("autopilot never reached food")
	}
}

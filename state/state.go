// Package state holds the authoritative snake game state and the per-tick
// advance rules: movement, food consumption, and collision detection.
package state

import (
	"math/rand"

	"github.com/pthm-cable/snake/grid"
)

// Cause identifies why a round ended.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

// String returns a lower-case label suitable for logs and CSV.
func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	}
	return "none"
}

// Options configures a fresh State.
type Options struct {
	Grid       grid.Grid
	Origin     grid.Cell
	Direction  grid.Direction
	AvoidSnake bool // Keep food off the snake body
}

// State is the mutable game record. Snake[0] is the head.
type State struct {
	Snake     []grid.Cell
	Direction grid.Direction
	Food      grid.Cell
	Score     int
	GameOver  bool
	Started   bool

	// Cause is set together with GameOver.
	Cause Cause
	// Ticks counts advances since the state was created.
	Ticks int

	grid       grid.Grid
	avoidSnake bool
}

// New returns the initial state: a single-cell snake at the origin heading
// in the configured direction, food at the {0,0} placeholder, flags cleared.
func New(opts Options) *State {
	return &State{
		Snake:      []grid.Cell{opts.Origin},
		Direction:  opts.Direction,
		Food:       grid.Cell{},
		grid:       opts.Grid,
		avoidSnake: opts.AvoidSnake,
	}
}

// Grid returns the play field the state was created for.
func (s *State) Grid() grid.Grid {
	return s.grid
}

// Head returns the first snake cell.
func (s *State) Head() grid.Cell {
	return s.Snake[0]
}

// Len returns the snake length.
func (s *State) Len() int {
	return len(s.Snake)
}

// SetDirection applies d unless it reverses the current direction.
// Returns true if the direction was accepted.
func (s *State) SetDirection(d grid.Direction) bool {
	if d == s.Direction.Opposite() {
		return false
	}
	s.Direction = d
	return true
}

// Result describes what happened during one Advance.
type Result struct {
	Ate   bool
	Cause Cause
}

// Advance moves the snake one cell, handles food, and flags collisions.
// The state is mutated even when the move collides; GameOver is only
// recorded here, stopping the loop is the caller's job.
func (s *State) Advance(rng *rand.Rand) Result {
	var res Result

	head := s.grid.Step(s.Head(), s.Direction)
	s.Snake = append(s.Snake, grid.Cell{})
	copy(s.Snake[1:], s.Snake[:len(s.Snake)-1])
	s.Snake[0] = head

	if head == s.Food {
		s.Score++
		s.PlaceFood(rng)
		res.Ate = true
	} else {
		s.Snake = s.Snake[:len(s.Snake)-1]
	}

	s.Ticks++

	if cause := s.collision(); cause != CauseNone {
		s.GameOver = true
		s.Cause = cause
		res.Cause = cause
	}

	return res
}

// PlaceFood moves the food to a fresh random cell.
func (s *State) PlaceFood(rng *rand.Rand) {
	s.Food = s.randomFood(rng)
}

package state

import (
	"math/rand"

	"github.com/pthm-cable/snake/grid"
)

// maxFoodRetries bounds rejection sampling before falling back to a scan of free cells.
const maxFoodRetries = 32

// randomFood draws a food cell. Without avoidSnake the draw is a plain
// uniform sample and may land on the snake.
func (s *State) randomFood(rng *rand.Rand) grid.Cell {
	c := s.grid.RandomCell(rng)
	if !s.avoidSnake {
		return c
	}

	occupied := make(map[grid.Cell]struct{}, len(s.Snake))
	for _, part := range s.Snake {
		occupied[part] = struct{}{}
	}

	for i := 0; i < maxFoodRetries; i++ {
		if _, hit := occupied[c]; !hit {
			return c
		}
		c = s.grid.RandomCell(rng)
	}

	// Crowded board: pick uniformly among the free cells.
	n := s.grid.Extent()
	free := make([]grid.Cell, 0, max(n*n-len(occupied), 0))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cell := s.grid.CellAt(col, row)
			if _, hit := occupied[cell]; !hit {
				free = append(free, cell)
			}
		}
	}
	if len(free) == 0 {
		return c
	}
	return free[rng.Intn(len(free))]
}

// OnSnake reports whether c is covered by any snake segment.
func (s *State) OnSnake(c grid.Cell) bool {
	for _, part := range s.Snake {
		if part == c {
			return true
		}
	}
	return false
}

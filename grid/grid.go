// Package grid defines the play field: cells, directions, and bounds.
package grid

import (
	"fmt"
	"math/rand"
	"strings"
)

// Cell is a grid-aligned position in pixel units.
// Both coordinates are multiples of the cell size while on the board.
type Cell struct {
	X, Y int
}

// Direction is one of the four movement directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the upper-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit step for the direction (screen coordinates, Y grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// ParseDirection parses a case-insensitive direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Right, fmt.Errorf("unknown direction %q", s)
}

// Grid describes a square play field of Size pixels split into CellSize steps.
type Grid struct {
	CellSize int
	Size     int
}

// New creates a grid. size should be a multiple of cellSize.
func New(cellSize, size int) Grid {
	return Grid{CellSize: cellSize, Size: size}
}

// Extent returns the number of cells per axis.
func (g Grid) Extent() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Size / g.CellSize
}

// Contains reports whether c lies inside [0, Size) on both axes.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Aligned reports whether both coordinates are multiples of the cell size.
func (g Grid) Aligned(c Cell) bool {
	return c.X%g.CellSize == 0 && c.Y%g.CellSize == 0
}

// Step returns c moved one cell in direction d. The result may leave the board.
func (g Grid) Step(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx*g.CellSize, Y: c.Y + dy*g.CellSize}
}

// RandomCell picks a uniformly random cell, each axis drawn independently.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	n := g.Extent()
	return Cell{
		X: rng.Intn(n) * g.CellSize,
		Y: rng.Intn(n) * g.CellSize,
	}
}

// CellAt converts a cell index pair to a Cell.
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.CellSize, Y: row * g.CellSize}
}

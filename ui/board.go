package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/renderer"
)

// Board draws the play field and the display list's sprites.
type Board struct {
	renderer *Renderer
	size     int32
	cellSize int32
}

// NewBoard creates a board of size×size pixels.
func NewBoard(size, cellSize int) *Board {
	return &Board{
		renderer: NewRenderer(),
		size:     int32(size),
		cellSize: int32(cellSize),
	}
}

// Draw paints the board background and every sprite in draw order.
// Sprites outside the board (the terminal frame of a wall hit) are clipped.
func (b *Board) Draw(display *renderer.DisplayList) {
	theme := b.renderer.Theme
	rl.DrawRectangle(0, 0, b.size, b.size, theme.Board)

	if theme.ShowGrid {
		for p := b.cellSize; p < b.size; p += b.cellSize {
			rl.DrawLine(p, 0, p, b.size, theme.GridLine)
			rl.DrawLine(0, p, b.size, p, theme.GridLine)
		}
	}

	rl.BeginScissorMode(0, 0, b.size, b.size)
	for _, s := range display.Sprites() {
		rl.DrawRectangle(s.X, s.Y, s.Size, s.Size, b.spriteColor(s.Kind))
	}
	rl.EndScissorMode()
}

func (b *Board) spriteColor(kind components.SpriteKind) rl.Color {
	switch kind {
	case components.KindHead:
		return b.renderer.Theme.SnakeHead
	case components.KindFood:
		return b.renderer.Theme.Food
	default:
		return b.renderer.Theme.SnakeBody
	}
}

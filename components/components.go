// Package components defines ECS components for the display list.
package components

// SpriteKind identifies what a sprite depicts.
type SpriteKind uint8

const (
	KindHead SpriteKind = iota
	KindBody
	KindFood
)

// String returns the CSS-style class name of the kind.
func (k SpriteKind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindBody:
		return "snake"
	case KindFood:
		return "food"
	}
	return "unknown"
}

// Position is the top-left corner of a sprite in board pixels.
type Position struct {
	X, Y int32
}

// Sprite is a square visual element.
type Sprite struct {
	Kind  SpriteKind
	Size  int32
	Order int32 // Draw order within a frame; later sprites paint over earlier ones
}

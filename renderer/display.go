// Package renderer keeps the visual representation of the board in sync with
// the game state. Every sync throws away the previous frame's sprites and
// recreates one entity per snake cell plus one for the food.
package renderer

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/grid"
)

// SpriteView is a read-only copy of one sprite entity.
type SpriteView struct {
	Kind components.SpriteKind
	X, Y int32
	Size int32
}

// DisplayList holds the current frame's sprites in an ECS world.
type DisplayList struct {
	world *ecs.World

	spriteMapper *ecs.Map2[components.Position, components.Sprite]
	spriteFilter *ecs.Filter2[components.Position, components.Sprite]

	cellSize int32
	frames   int
	scratch  []ecs.Entity
}

// NewDisplayList creates an empty display list for sprites of the given cell size.
func NewDisplayList(cellSize int) *DisplayList {
	world := ecs.NewWorld()
	return &DisplayList{
		world:        world,
		spriteMapper: ecs.NewMap2[components.Position, components.Sprite](world),
		spriteFilter: ecs.NewFilter2[components.Position, components.Sprite](world),
		cellSize:     int32(cellSize),
	}
}

// Sync clears the previous frame and emits sprites for snake and food.
// The result depends only on the arguments.
func (d *DisplayList) Sync(snake []grid.Cell, food grid.Cell) {
	d.clear()

	order := int32(0)
	for i, part := range snake {
		kind := components.KindBody
		if i == 0 {
			kind = components.KindHead
		}
		d.spawn(part, kind, order)
		order++
	}
	d.spawn(food, components.KindFood, order)

	d.frames++
}

// clear removes every sprite entity. Entities are collected before removal
// because the world is locked while a query is open.
func (d *DisplayList) clear() {
	d.scratch = d.scratch[:0]
	query := d.spriteFilter.Query()
	for query.Next() {
		d.scratch = append(d.scratch, query.Entity())
	}
	for _, e := range d.scratch {
		d.world.RemoveEntity(e)
	}
}

func (d *DisplayList) spawn(c grid.Cell, kind components.SpriteKind, order int32) {
	pos := components.Position{X: int32(c.X), Y: int32(c.Y)}
	sprite := components.Sprite{Kind: kind, Size: d.cellSize, Order: order}
	d.spriteMapper.NewEntity(&pos, &sprite)
}

// Len returns the number of sprites in the current frame.
func (d *DisplayList) Len() int {
	n := 0
	query := d.spriteFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Frames returns how many times Sync has run.
func (d *DisplayList) Frames() int {
	return d.frames
}

// Sprites returns the current frame in draw order.
func (d *DisplayList) Sprites() []SpriteView {
	type ordered struct {
		order int32
		view  SpriteView
	}
	var items []ordered

	query := d.spriteFilter.Query()
	for query.Next() {
		pos, sprite := query.Get()
		items = append(items, ordered{
			order: sprite.Order,
			view:  SpriteView{Kind: sprite.Kind, X: pos.X, Y: pos.Y, Size: sprite.Size},
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].order < items[j].order })

	out := make([]SpriteView, len(items))
	for i, it := range items {
		out[i] = it.view
	}
	return out
}

package renderer

import (
	"testing"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/grid"
)

func TestSyncEmitsOneSpritePerCellPlusFood(t *testing.T) {
	d := NewDisplayList(20)
	snake := []grid.Cell{{X: 180, Y: 160}, {X: 160, Y: 160}, {X: 140, Y: 160}}
	food := grid.Cell{X: 0, Y: 20}

	d.Sync(snake, food)

	sprites := d.Sprites()
	if len(sprites) != 4 {
		t.Fatalf("got %d sprites, want 4", len(sprites))
	}

	want := []SpriteView{
		{Kind: components.KindHead, X: 180, Y: 160, Size: 20},
		{Kind: components.KindBody, X: 160, Y: 160, Size: 20},
		{Kind: components.KindBody, X: 140, Y: 160, Size: 20},
		{Kind: components.KindFood, X: 0, Y: 20, Size: 20},
	}
	for i := range want {
		if sprites[i] != want[i] {
			t.Errorf("sprite %d = %+v, want %+v", i, sprites[i], want[i])
		}
	}
}

func TestSyncReplacesPreviousFrame(t *testing.T) {
	d := NewDisplayList(20)

	d.Sync([]grid.Cell{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0}}, grid.Cell{X: 100, Y: 100})
	if d.Len() != 4 {
		t.Fatalf("first frame len = %d, want 4", d.Len())
	}

	d.Sync([]grid.Cell{{X: 60, Y: 60}}, grid.Cell{X: 80, Y: 80})
	if d.Len() != 2 {
		t.Fatalf("second frame len = %d, want 2", d.Len())
	}

	sprites := d.Sprites()
	if sprites[0].X != 60 || sprites[0].Kind != components.KindHead {
		t.Errorf("head sprite = %+v, want head at x=60", sprites[0])
	}
	if sprites[1].Kind != components.KindFood || sprites[1].X != 80 {
		t.Errorf("food sprite = %+v, want food at x=80", sprites[1])
	}
	if d.Frames() != 2 {
		t.Errorf("frames = %d, want 2", d.Frames())
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	d := NewDisplayList(20)
	snake := []grid.Cell{{X: 40, Y: 40}, {X: 20, Y: 40}}
	food := grid.Cell{X: 200, Y: 200}

	d.Sync(snake, food)
	first := d.Sprites()
	d.Sync(snake, food)
	second := d.Sprites()

	if len(first) != len(second) {
		t.Fatalf("len changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sprite %d changed: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSyncOffBoardHead(t *testing.T) {
	d := NewDisplayList(20)
	d.Sync([]grid.Cell{{X: -20, Y: 160}}, grid.Cell{X: 0, Y: 0})

	sprites := d.Sprites()
	if sprites[0].X != -20 {
		t.Errorf("terminal frame head x = %d, want -20", sprites[0].X)
	}
}

func TestEmptyDisplayList(t *testing.T) {
	d := NewDisplayList(20)
	if d.Len() != 0 || len(d.Sprites()) != 0 {
		t.Error("new display list should be empty")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pthm-cable/snake/grid"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Grid.CellSize != 20 || cfg.Grid.AreaSize != 400 {
		t.Errorf("grid = %+v, want cell 20 area 400", cfg.Grid)
	}
	if cfg.Derived.Grid.Extent() != 20 {
		t.Errorf("extent = %d, want 20", cfg.Derived.Grid.Extent())
	}
	if cfg.Derived.TickPeriod != 100*time.Millisecond {
		t.Errorf("tick period = %v, want 100ms", cfg.Derived.TickPeriod)
	}
	if cfg.Derived.Origin != (grid.Cell{X: 160, Y: 160}) {
		t.Errorf("origin = %v, want {160 160}", cfg.Derived.Origin)
	}
	if cfg.Derived.Direction != grid.Right {
		t.Errorf("direction = %v, want RIGHT", cfg.Derived.Direction)
	}
	if cfg.Food.AvoidSnake {
		t.Error("avoid_snake should default to false")
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := "loop:\n  tick_ms: 50\nfood:\n  avoid_snake: true\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Derived.TickPeriod != 50*time.Millisecond {
		t.Errorf("tick period = %v, want 50ms", cfg.Derived.TickPeriod)
	}
	if !cfg.Food.AvoidSnake {
		t.Error("avoid_snake overlay not applied")
	}
	// Untouched sections keep defaults
	if cfg.Grid.AreaSize != 400 {
		t.Errorf("area size = %d, want default 400", cfg.Grid.AreaSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{"zero cell size", "grid:\n  cell_size: 0\n"},
		{"area not multiple", "grid:\n  area_size: 410\n"},
		{"misaligned origin", "snake:\n  origin_x: 165\n"},
		{"origin outside", "snake:\n  origin_y: 400\n"},
		{"unknown direction", "snake:\n  direction: north\n"},
		{"zero tick", "loop:\n  tick_ms: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.overlay), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load accepted %q", tt.overlay)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Loop.TickMS = 80

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Loop.TickMS != 80 {
		t.Errorf("tick_ms = %d, want 80", loaded.Loop.TickMS)
	}
}

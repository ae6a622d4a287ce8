package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances by a fixed step on every read.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestPerfCollectorPhases(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0), step: 10 * time.Millisecond}
	p := NewPerfCollector(4, 100*time.Millisecond)
	p.now = clock.now

	// Each tick: start, advance, render, end = 4 reads, 30ms tick
	for i := 0; i < 3; i++ {
		p.StartTick()
		p.StartPhase(PhaseAdvance)
		p.StartPhase(PhaseRender)
		p.EndTick()
	}

	s := p.Stats()
	if s.AvgTick != 30*time.Millisecond || s.MaxTick != 30*time.Millisecond {
		t.Errorf("avg=%v max=%v, want 30ms", s.AvgTick, s.MaxTick)
	}
	if s.Phases[PhaseAdvance] != 30*time.Millisecond || s.Phases[PhaseRender] != 30*time.Millisecond {
		t.Errorf("phases = %v, want 30ms each", s.Phases)
	}
	if s.Overruns != 0 {
		t.Errorf("overruns = %d, want 0", s.Overruns)
	}
}

func TestPerfCollectorOverruns(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0), step: 150 * time.Millisecond}
	p := NewPerfCollector(2, 100*time.Millisecond)
	p.now = clock.now

	for i := 0; i < 5; i++ {
		p.StartTick()
		p.EndTick()
	}

	s := p.Stats()
	if s.Overruns != 5 {
		t.Errorf("overruns = %d, want 5", s.Overruns)
	}
	if s.AvgTick != 150*time.Millisecond {
		t.Errorf("avg = %v, want 150ms", s.AvgTick)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	s := NewPerfCollector(0, time.Second).Stats()
	if s.AvgTick != 0 || s.MaxTick != 0 || s.Overruns != 0 {
		t.Errorf("empty stats = %+v", s)
	}
}

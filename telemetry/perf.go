package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one loop tick.
const (
	PhaseAdvance = "advance"
	PhaseRender  = "render"
)

// PerfCollector tracks tick processing time over a rolling window and counts
// ticks that took longer than the loop period.
type PerfCollector struct {
	budget  time.Duration
	samples []time.Duration
	phases  map[string]time.Duration

	writeIndex  int
	sampleCount int
	overruns    int

	tickStart  time.Time
	phaseStart time.Time
	lastPhase  string

	now func() time.Time
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
// budget is the loop period a tick must fit in.
func NewPerfCollector(windowSize int, budget time.Duration) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		budget:  budget,
		samples: make([]time.Duration, windowSize),
		phases:  make(map[string]time.Duration),
		now:     time.Now,
	}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := p.now()
	if p.lastPhase != "" {
		p.phases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick records the tick duration.
func (p *PerfCollector) EndTick() {
	now := p.now()
	if p.lastPhase != "" {
		p.phases[p.lastPhase] += now.Sub(p.phaseStart)
		p.lastPhase = ""
	}

	d := now.Sub(p.tickStart)
	if p.budget > 0 && d > p.budget {
		p.overruns++
	}

	p.samples[p.writeIndex] = d
	p.writeIndex = (p.writeIndex + 1) % len(p.samples)
	if p.sampleCount < len(p.samples) {
		p.sampleCount++
	}
}

// PerfStats holds aggregated tick timing.
type PerfStats struct {
	AvgTick  time.Duration
	MaxTick  time.Duration
	Overruns int
	Phases   map[string]time.Duration // Cumulative time per phase
}

// Stats returns statistics over the current window. Overruns and phase
// totals cover the whole session.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Overruns: p.overruns, Phases: make(map[string]time.Duration, len(p.phases))}
	for k, v := range p.phases {
		s.Phases[k] = v
	}
	if p.sampleCount == 0 {
		return s
	}

	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		d := p.samples[i]
		total += d
		if d > s.MaxTick {
			s.MaxTick = d
		}
	}
	s.AvgTick = total / time.Duration(p.sampleCount)
	return s
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("avg_tick", s.AvgTick),
		slog.Duration("max_tick", s.MaxTick),
		slog.Int("overruns", s.Overruns),
		slog.Duration(PhaseAdvance, s.Phases[PhaseAdvance]),
		slog.Duration(PhaseRender, s.Phases[PhaseRender]),
	)
}

package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates scores over a session.
type Summary struct {
	Rounds int
	Mean   float64
	StdDev float64
	Best   float64
	Ticks  int
}

// Summarize computes score statistics. StdDev is 0 with fewer than two rounds.
func Summarize(rounds []Round) Summary {
	s := Summary{Rounds: len(rounds)}
	if len(rounds) == 0 {
		return s
	}

	scores := make([]float64, len(rounds))
	for i, r := range rounds {
		scores[i] = float64(r.Score)
		s.Ticks += r.Ticks
	}

	s.Mean = stat.Mean(scores, nil)
	if len(scores) > 1 {
		s.StdDev = stat.StdDev(scores, nil)
	}
	s.Best = floats.Max(scores)
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rounds", s.Rounds),
		slog.Float64("mean_score", s.Mean),
		slog.Float64("std_score", s.StdDev),
		slog.Float64("best_score", s.Best),
		slog.Int("ticks", s.Ticks),
	)
}

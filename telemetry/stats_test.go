package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		mean   float64
		std    float64
		best   float64
	}{
		{"empty", nil, 0, 0, 0},
		{"single round", []int{4}, 4, 0, 4},
		{"two rounds", []int{2, 4}, 3, math.Sqrt2, 4},
		{"several", []int{0, 1, 2, 3, 4}, 2, math.Sqrt(2.5), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounds := make([]Round, len(tt.scores))
			for i, s := range tt.scores {
				rounds[i] = Round{Score: s, Ticks: 10}
			}

			got := Summarize(rounds)
			if got.Rounds != len(tt.scores) {
				t.Errorf("rounds = %d, want %d", got.Rounds, len(tt.scores))
			}
			if math.Abs(got.Mean-tt.mean) > 1e-9 {
				t.Errorf("mean = %v, want %v", got.Mean, tt.mean)
			}
			if math.Abs(got.StdDev-tt.std) > 1e-9 {
				t.Errorf("std = %v, want %v", got.StdDev, tt.std)
			}
			if got.Best != tt.best {
				t.Errorf("best = %v, want %v", got.Best, tt.best)
			}
			if got.Ticks != 10*len(tt.scores) {
				t.Errorf("ticks = %d, want %d", got.Ticks, 10*len(tt.scores))
			}
		})
	}
}

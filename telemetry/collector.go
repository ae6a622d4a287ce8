package telemetry

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/snake/state"
)

// Collector accumulates finished rounds for one session and forwards them
// to the optional output manager.
type Collector struct {
	session    string
	tickPeriod time.Duration
	rounds     []Round
	output     *OutputManager
	logRounds  bool
	logger     *slog.Logger
}

// NewCollector creates a collector with a fresh session id.
// output may be nil (no files written).
func NewCollector(tickPeriod time.Duration, output *OutputManager, logRounds bool, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		session:    uuid.NewString(),
		tickPeriod: tickPeriod,
		output:     output,
		logRounds:  logRounds,
		logger:     logger,
	}
}

// Session returns the session id.
func (c *Collector) Session() string {
	return c.session
}

// RecordRound stores the outcome of a finished state.
func (c *Collector) RecordRound(s *state.State) Round {
	r := Round{
		Session:  c.session,
		Number:   len(c.rounds) + 1,
		Score:    s.Score,
		Length:   s.Len(),
		Ticks:    s.Ticks,
		Cause:    s.Cause.String(),
		Duration: (time.Duration(s.Ticks) * c.tickPeriod).Seconds(),
	}
	c.rounds = append(c.rounds, r)

	if c.logRounds {
		c.logger.Info("round finished",
			"session", r.Session,
			"round", r.Number,
			"score", r.Score,
			"length", r.Length,
			"ticks", r.Ticks,
			"cause", r.Cause,
		)
	}

	if err := c.output.WriteRound(r); err != nil {
		c.logger.Error("failed to write round", "error", err)
	}

	return r
}

// Rounds returns the finished rounds in order.
func (c *Collector) Rounds() []Round {
	return c.rounds
}

// Summary returns statistics over all finished rounds.
func (c *Collector) Summary() Summary {
	return Summarize(c.rounds)
}

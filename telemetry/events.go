// Package telemetry records finished rounds and summarizes a play session.
package telemetry

// Round is one finished game, from start (or restart) to game over.
type Round struct {
	Session  string  `csv:"session"`
	Number   int     `csv:"round"`
	Score    int     `csv:"score"`
	Length   int     `csv:"length"`
	Ticks    int     `csv:"ticks"`
	Cause    string  `csv:"cause"`
	Duration float64 `csv:"duration_sec"` // Simulated time: ticks * tick period
}

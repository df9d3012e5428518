// Package models defines the records breathe persists
package models

import (
	"time"
)

// Session is one breathing session as stored in the history.
type Session struct {
	// StartTime is when the session was first started.
	StartTime time.Time `json:"start_time"`
	// EndTime is when the session completed or was abandoned.
	EndTime         time.Time     `json:"end_time"`
	PatternID       string        `json:"pattern_id"`
	PatternName     string        `json:"pattern_name"`
	Ratio           string        `json:"ratio"`
	Cycles          int           `json:"cycles"`
	CyclesCompleted int           `json:"cycles_completed"`
	Elapsed         time.Duration `json:"elapsed"`
	Completed       bool          `json:"completed"`
}

// Abandoned reports whether the session was stopped before all cycles ran.
func (s *Session) Abandoned() bool {
	return !s.Completed
}

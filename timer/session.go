package timer

import (
	"time"

	"github.com/ayoisaiah/breathe/internal/engine"
	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/pattern"
)

// record is the history entry for the session on screen.
type record struct {
	sess models.Session
}

func newRecord(p pattern.Pattern, cycles int, start time.Time) *record {
	return &record{
		sess: models.Session{
			StartTime:   start,
			EndTime:     start,
			PatternID:   p.ID,
			PatternName: p.Name,
			Ratio:       p.Ratio(),
			Cycles:      cycles,
		},
	}
}

// abandon closes the record for a session stopped early. The cycle in
// progress does not count as completed.
func (r *record) abandon(snap engine.Snapshot, end time.Time) {
	r.sess.EndTime = end
	r.sess.Elapsed = snap.Elapsed
	r.sess.CyclesCompleted = max(snap.Cycle-1, 0)
	r.sess.Completed = false
}

func (r *record) complete(c engine.Completion) {
	r.sess.EndTime = c.EndedAt
	r.sess.Elapsed = c.Elapsed
	r.sess.CyclesCompleted = c.Cycles
	r.sess.Completed = true
}

func (r *record) model() *models.Session {
	s := r.sess
	return &s
}

func (r *record) startedAt(tm time.Time) bool {
	return r != nil && r.sess.StartTime.Equal(tm)
}

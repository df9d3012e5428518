package timer

import (
	"github.com/ayoisaiah/breathe/internal/engine"
)

// cue plays the guidance sound for a phase the engine just entered. Stale
// messages that arrive after a reset or pause are ignored.
func (t *Timer) cue(c engine.PhaseChange) {
	if t.engine.Snapshot().State != engine.Running {
		return
	}

	t.sound.PlayPhase(c.Phase, c.Duration)
}

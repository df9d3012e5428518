// Package engine runs a breathing session: it turns a pattern and a cycle
// count into a pausable timeline and reports phase, cycle and progress to its
// collaborators
package engine

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ayoisaiah/breathe/internal/pattern"
)

// DefaultTickInterval is how often a running engine recomputes its state.
const DefaultTickInterval = 25 * time.Millisecond

// State is the lifecycle state of a session.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}

	return fmt.Sprintf("state(%d)", int(s))
}

// Config binds a pattern to the number of cycles to run it for.
type Config struct {
	Pattern pattern.Pattern
	Cycles  int
}

// Validate rejects configurations that would never make progress.
func (c *Config) Validate() error {
	if c.Cycles < 1 {
		return ErrInvalidConfig.Wrap(
			fmt.Errorf("cycles must be at least 1, got %d", c.Cycles),
		)
	}

	if err := c.Pattern.Timing(); err != nil {
		return ErrInvalidConfig.Wrap(err)
	}

	return nil
}

// TotalDuration is the length of the whole session.
func (c *Config) TotalDuration() time.Duration {
	return time.Duration(c.Cycles) * c.Pattern.CycleDuration()
}

// PhaseChange is delivered to phase hooks once per transition.
type PhaseChange struct {
	At       time.Time
	Phase    pattern.Phase
	Cycle    int
	Duration time.Duration
}

// Completion is delivered to completion hooks when the last cycle ends.
type Completion struct {
	StartedAt time.Time
	EndedAt   time.Time
	Pattern   pattern.Pattern
	Cycles    int
	Elapsed   time.Duration
}

// Snapshot is a read-only view of the engine as of its last tick.
type Snapshot struct {
	StartedAt        time.Time
	Pattern          pattern.Pattern
	State            State
	Phase            pattern.Phase
	Cycle            int
	Cycles           int
	PhaseDuration    time.Duration
	TimeRemaining    time.Duration
	TotalSessionTime time.Duration
	Elapsed          time.Duration
	Progress         float64
	Active           bool
	Paused           bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock used for readings and tick scheduling.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithTickInterval changes how often a running session is recomputed.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithLogger sets the logger for transition records.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

type event struct {
	phase *PhaseChange
	done  *Completion
}

// Engine is the session timing engine. All of its state is owned by the
// control methods and the tick callback; the pending tick is cancelled before
// any control method mutates state.
type Engine struct {
	startRef      time.Time
	phaseStartRef time.Time
	startedAt     time.Time
	clock         Clock
	pending       Timer
	logger        *slog.Logger
	onPhase       []func(PhaseChange)
	onComplete    []func(Completion)
	cfg           Config
	mu            sync.Mutex
	interval      time.Duration
	remaining     time.Duration
	elapsed       time.Duration
	pausedElapsed time.Duration
	pausedPhase   time.Duration
	progress      float64
	gen           uint64
	state         State
	phase         pattern.Phase
	cycle         int
}

// New creates an idle engine bound to cfg.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		clock:    realClock{},
		interval: DefaultTickInterval,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.resetLocked()

	return e, nil
}

// OnPhaseChanged registers fn to be called after every phase transition,
// including the initial inhale of a new session.
func (e *Engine) OnPhaseChanged(fn func(PhaseChange)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.onPhase = append(e.onPhase, fn)
}

// OnSessionCompleted registers fn to be called once when the configured
// number of cycles has been breathed.
func (e *Engine) OnSessionCompleted(fn func(Completion)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.onComplete = append(e.onComplete, fn)
}

// Config returns the bound session configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cfg
}

// SetConfig binds a new configuration and resets the engine, abandoning any
// session in progress.
func (e *Engine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Idle {
		e.logger.Debug(
			"config replaced mid-session",
			slog.String("from", e.cfg.Pattern.ID),
			slog.String("to", cfg.Pattern.ID),
		)
	}

	e.cfg = cfg
	e.resetLocked()

	return nil
}

// Start begins a new session, or resumes a paused one. It does nothing if a
// session is already running.
func (e *Engine) Start() {
	e.mu.Lock()

	var events []event

	now := e.clock.Now()

	switch e.state {
	case Running:
		e.mu.Unlock()
		return
	case Paused:
		e.startRef = now.Add(-e.pausedElapsed)
		e.phaseStartRef = now.Add(-e.pausedPhase)
		e.state = Running

		e.logger.Debug("session resumed", slog.Duration("elapsed", e.pausedElapsed))
	case Idle, Completed:
		e.cycle = 1
		e.phase = e.firstPhase()
		e.remaining = e.cfg.Pattern.Duration(e.phase)
		e.elapsed = 0
		e.progress = 0
		e.startRef = now
		e.phaseStartRef = now
		e.startedAt = now
		e.pausedElapsed = 0
		e.pausedPhase = 0
		e.state = Running

		e.logger.Debug(
			"session started",
			slog.String("pattern", e.cfg.Pattern.ID),
			slog.Int("cycles", e.cfg.Cycles),
		)

		events = append(events, e.phaseEvent(now))
	}

	e.gen++
	gen := e.gen

	e.mu.Unlock()

	e.dispatch(events)
	e.arm(gen)
}

// Pause freezes a running session. It does nothing otherwise.
func (e *Engine) Pause() {
	e.mu.Lock()

	if e.state != Running {
		e.mu.Unlock()
		return
	}

	now := e.clock.Now()

	e.cancelLocked()

	events := e.update(now)

	// the catch-up above may have finished the session
	if e.state == Running {
		e.pausedElapsed = now.Sub(e.startRef)
		e.pausedPhase = now.Sub(e.phaseStartRef)
		e.state = Paused

		e.logger.Debug("session paused", slog.Duration("elapsed", e.pausedElapsed))
	}

	e.mu.Unlock()

	e.dispatch(events)
}

// Reset abandons any session and returns the engine to idle.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetLocked()
}

// Snapshot returns the engine state as of the last tick or control call.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		StartedAt:        e.startedAt,
		Pattern:          e.cfg.Pattern,
		State:            e.state,
		Active:           e.state == Running || e.state == Paused,
		Paused:           e.state == Paused,
		Phase:            e.phase,
		Cycle:            e.cycle,
		Cycles:           e.cfg.Cycles,
		PhaseDuration:    e.cfg.Pattern.Duration(e.phase),
		TimeRemaining:    e.remaining,
		TotalSessionTime: e.cfg.TotalDuration(),
		Elapsed:          e.elapsed,
		Progress:         e.progress,
	}
}

// arm schedules the next tick unless the session moved on since gen.
func (e *Engine) arm(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gen != gen || e.state != Running {
		return
	}

	e.pending = e.clock.AfterFunc(e.interval, func() {
		e.tick(gen)
	})
}

func (e *Engine) tick(gen uint64) {
	e.mu.Lock()

	// a tick that fired while a control method held the lock is stale
	if e.gen != gen || e.state != Running {
		e.mu.Unlock()
		return
	}

	e.pending = nil

	events := e.update(e.clock.Now())

	e.mu.Unlock()

	e.dispatch(events)
	e.arm(gen)
}

// update recomputes elapsed time, progress and the time left in the phase,
// advancing through every phase boundary that now lies in the past.
func (e *Engine) update(now time.Time) []event {
	var events []event

	e.elapsed = now.Sub(e.startRef)
	e.progress = progress(e.elapsed, e.cfg.TotalDuration())

	for {
		d := e.cfg.Pattern.Duration(e.phase)

		phaseElapsed := now.Sub(e.phaseStartRef)
		if phaseElapsed < d {
			e.remaining = d - phaseElapsed
			return events
		}

		boundary := e.phaseStartRef.Add(d)

		next, wrapped := e.nextPhase(e.phase)
		if wrapped {
			e.cycle++
		}

		if e.cycle > e.cfg.Cycles {
			return append(events, e.completeLocked(boundary))
		}

		e.phase = next
		e.phaseStartRef = boundary

		events = append(events, e.phaseEvent(boundary))
	}
}

// nextPhase walks the cycle order from current, skipping phases with no
// duration. wrapped reports whether the walk passed the end of a cycle.
func (e *Engine) nextPhase(current pattern.Phase) (next pattern.Phase, wrapped bool) {
	i := int(current)

	for range pattern.Phases {
		i++

		if i == len(pattern.Phases) {
			i = 0
			wrapped = true
		}

		if e.cfg.Pattern.Duration(pattern.Phases[i]) > 0 {
			return pattern.Phases[i], wrapped
		}
	}

	return current, wrapped
}

// firstPhase is inhale unless the pattern has no inhale.
func (e *Engine) firstPhase() pattern.Phase {
	if e.cfg.Pattern.Inhale > 0 {
		return pattern.Inhale
	}

	next, _ := e.nextPhase(pattern.Inhale)

	return next
}

func (e *Engine) phaseEvent(at time.Time) event {
	e.logger.Debug(
		"phase changed",
		slog.String("phase", e.phase.String()),
		slog.Int("cycle", e.cycle),
	)

	return event{
		phase: &PhaseChange{
			At:       at,
			Phase:    e.phase,
			Cycle:    e.cycle,
			Duration: e.cfg.Pattern.Duration(e.phase),
		},
	}
}

func (e *Engine) completeLocked(at time.Time) event {
	c := &Completion{
		StartedAt: e.startedAt,
		EndedAt:   at,
		Pattern:   e.cfg.Pattern,
		Cycles:    e.cfg.Cycles,
		Elapsed:   at.Sub(e.startRef),
	}

	e.state = Completed

	e.logger.Debug(
		"session completed",
		slog.String("pattern", e.cfg.Pattern.ID),
		slog.Duration("elapsed", c.Elapsed),
	)

	e.resetLocked()

	return event{done: c}
}

func (e *Engine) cancelLocked() {
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}

	e.gen++
}

func (e *Engine) resetLocked() {
	e.cancelLocked()

	e.state = Idle
	e.phase = pattern.Inhale
	e.cycle = 1
	e.remaining = e.cfg.Pattern.Inhale
	e.elapsed = 0
	e.progress = 0
	e.startRef = time.Time{}
	e.phaseStartRef = time.Time{}
	e.startedAt = time.Time{}
	e.pausedElapsed = 0
	e.pausedPhase = 0
}

// dispatch runs hooks outside the lock so that they may call back into the
// engine.
func (e *Engine) dispatch(events []event) {
	if len(events) == 0 {
		return
	}

	e.mu.Lock()
	onPhase := slices.Clone(e.onPhase)
	onComplete := slices.Clone(e.onComplete)
	e.mu.Unlock()

	for _, ev := range events {
		switch {
		case ev.phase != nil:
			for _, fn := range onPhase {
				fn(*ev.phase)
			}
		case ev.done != nil:
			for _, fn := range onComplete {
				fn(*ev.done)
			}
		}
	}
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}

	return min(100, float64(elapsed)/float64(total)*100)
}

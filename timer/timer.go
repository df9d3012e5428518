// Package timer runs a breathing session in the terminal and records it in
// the session history
package timer

import (
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/engine"
	"github.com/ayoisaiah/breathe/internal/pattern"
	"github.com/ayoisaiah/breathe/internal/sound"
	"github.com/ayoisaiah/breathe/store"
)

const frameInterval = 33 * time.Millisecond

type (
	frameMsg     time.Time
	phaseMsg     engine.PhaseChange
	completedMsg engine.Completion
)

// Option configures a Timer.
type Option func(*Timer)

// WithSound plays audio cues through p.
func WithSound(p *sound.Player) Option {
	return func(t *Timer) {
		t.sound = p
	}
}

// WithStatusFile writes the timer status to path on every change.
func WithStatusFile(path string) Option {
	return func(t *Timer) {
		t.statusPath = path
	}
}

// WithEngineOptions passes opts to the session engine.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(t *Timer) {
		t.engineOpts = append(t.engineOpts, opts...)
	}
}

// Timer is the bubbletea model for a breathing session.
type Timer struct {
	db         store.DB
	Opts       *config.Config
	engine     *engine.Engine
	sound      *sound.Player
	events     *eventQueue
	record     *record
	finishing  *record
	completion *engine.Completion
	notify     func(title, msg string) error
	engineOpts []engine.Option
	patterns   []pattern.Pattern
	statusPath string
	lastStatus Status
	help       help.Model
	progress   progress.Model
	style      Style
	snap       engine.Snapshot
	index      int
}

// New creates a timer over patterns, starting with the one selected by cfg.
func New(
	db store.DB,
	cfg *config.Config,
	patterns []pattern.Pattern,
	opts ...Option,
) (*Timer, error) {
	if cfg.CLI.Custom != nil {
		patterns = append([]pattern.Pattern{*cfg.CLI.Custom}, patterns...)
	}

	if len(patterns) == 0 {
		return nil, errNoPatterns
	}

	index := 0

	if cfg.CLI.Custom == nil {
		index = slices.IndexFunc(patterns, func(p pattern.Pattern) bool {
			return p.ID == cfg.Session.Pattern
		})
		if index < 0 {
			return nil, errUnknownPattern.Fmt(cfg.Session.Pattern)
		}
	}

	t := &Timer{
		db:       db,
		Opts:     cfg,
		patterns: patterns,
		index:    index,
		events:   newEventQueue(),
		notify:   desktopNotify,
		help:     help.New(),
		style:    newStyle(cfg.Display),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
	}

	for _, opt := range opts {
		opt(t)
	}

	engineOpts := append(
		[]engine.Option{engine.WithLogger(slog.Default())},
		t.engineOpts...,
	)

	e, err := engine.New(t.sessionConfig(), engineOpts...)
	if err != nil {
		return nil, err
	}

	// hooks may run on the engine's tick goroutine or inside Update, so they
	// only queue messages for the program
	e.OnPhaseChanged(func(c engine.PhaseChange) {
		t.events.push(phaseMsg(c))
	})

	e.OnSessionCompleted(func(c engine.Completion) {
		t.events.push(completedMsg(c))
	})

	t.engine = e
	t.snap = e.Snapshot()

	return t, nil
}

// Pattern returns the pattern currently bound to the timer.
func (t *Timer) Pattern() pattern.Pattern {
	return t.patterns[t.index]
}

func (t *Timer) sessionConfig() engine.Config {
	return engine.Config{
		Pattern: t.patterns[t.index],
		Cycles:  t.Opts.Session.Cycles,
	}
}

func (t *Timer) listen() tea.Cmd {
	return func() tea.Msg {
		return t.events.wait()
	}
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(tm time.Time) tea.Msg {
		return frameMsg(tm)
	})
}

func (t *Timer) Init() tea.Cmd {
	cmds := []tea.Cmd{t.listen(), frame()}

	if t.Opts.Session.AutoStart {
		t.start()
	}

	return tea.Batch(cmds...)
}

// start begins or resumes the session, opening a history record when a new
// session begins.
func (t *Timer) start() {
	if t.engine.Snapshot().Active {
		t.engine.Start()
		t.sound.StartBackground()

		t.snap = t.engine.Snapshot()

		return
	}

	t.park()
	t.completion = nil

	t.engine.Start()
	t.sound.StartBackground()

	t.snap = t.engine.Snapshot()

	startedAt := t.snap.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	t.record = newRecord(t.Pattern(), t.Opts.Session.Cycles, startedAt)

	if err := t.db.SetLastPattern(t.Pattern().ID); err != nil {
		slog.Error("saving last pattern failed", slog.Any("error", err))
	}
}

func (t *Timer) pause() {
	t.engine.Pause()
	t.sound.SetBackgroundPaused(true)

	t.snap = t.engine.Snapshot()
}

func (t *Timer) toggle() {
	if t.engine.Snapshot().State == engine.Running {
		t.pause()
		return
	}

	t.start()
}

// abandon persists the open record of a session stopped before its last
// cycle.
func (t *Timer) abandon() {
	if t.record == nil {
		return
	}

	snap := t.engine.Snapshot()
	if !snap.Active {
		t.park()
		return
	}

	t.record.abandon(snap, time.Now())
	t.persist(t.record)

	t.record = nil
}

// park sets aside the record of a session the engine has finished but whose
// completion has not been delivered yet.
func (t *Timer) park() {
	if t.record == nil {
		return
	}

	t.finishing = t.record
	t.record = nil
}

func (t *Timer) reset() {
	t.abandon()
	t.engine.Reset()
	t.sound.SetBackgroundPaused(true)

	t.completion = nil
	t.snap = t.engine.Snapshot()
}

// nextPattern moves to the next pattern, which also resets the session.
func (t *Timer) nextPattern() {
	t.abandon()

	t.index = (t.index + 1) % len(t.patterns)

	if err := t.engine.SetConfig(t.sessionConfig()); err != nil {
		slog.Error("switching pattern failed", slog.Any("error", err))
	}

	t.sound.SetBackgroundPaused(true)

	t.completion = nil
	t.snap = t.engine.Snapshot()
}

// complete closes the record of the session c belongs to. A completion for
// a session that was already replaced by a new one only updates history.
func (t *Timer) complete(c engine.Completion) tea.Cmd {
	switch {
	case t.record.startedAt(c.StartedAt):
		t.record.complete(c)
		t.persist(t.record)
		t.record = nil
	case t.finishing.startedAt(c.StartedAt):
		t.finishing.complete(c)
		t.persist(t.finishing)
		t.finishing = nil

		if t.engine.Snapshot().Active {
			return t.postSession(c)
		}
	default:
		slog.Debug(
			"completion without a matching session",
			slog.Time("started_at", c.StartedAt),
		)
	}

	t.completion = &c
	t.snap = t.engine.Snapshot()

	t.sound.SetBackgroundPaused(true)
	t.sound.Play(sound.CueComplete)

	return t.postSession(c)
}

func (t *Timer) persist(r *record) {
	if err := t.db.UpdateSession(r.model()); err != nil {
		slog.Error("saving session failed", slog.Any("error", err))
	}
}

// quit stops the session and releases the audio device and status file.
func (t *Timer) quit() tea.Cmd {
	t.abandon()
	t.engine.Reset()
	t.sound.Close()
	t.removeStatusFile()

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

// Run starts the terminal UI and blocks until the user quits.
func (t *Timer) Run() error {
	p := tea.NewProgram(t)

	_, err := p.Run()

	return err
}

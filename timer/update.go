package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/breathe/internal/engine"
)

// handleFrame refreshes the snapshot the view renders from.
func (t *Timer) handleFrame() (tea.Model, tea.Cmd) {
	t.snap = t.engine.Snapshot()

	if err := t.writeStatusFile(); err != nil {
		slog.Debug("status file not written", slog.Any("error", err))
	}

	return t, frame()
}

// handleEvents applies queued engine events in the order they happened.
func (t *Timer) handleEvents(msgs eventsMsg) tea.Cmd {
	var cmds []tea.Cmd

	for _, msg := range msgs {
		switch msg := msg.(type) {
		case phaseMsg:
			t.cue(engine.PhaseChange(msg))
		case completedMsg:
			cmds = append(cmds, t.complete(engine.Completion(msg)))
		}
	}

	t.snap = t.engine.Snapshot()

	return tea.Batch(cmds...)
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		t.toggle()

	case key.Matches(msg, defaultKeymap.reset):
		t.reset()

	case key.Matches(msg, defaultKeymap.next):
		t.nextPattern()

	case key.Matches(msg, defaultKeymap.quit):
		return t, t.quit()
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return t.handleFrame()

	case eventsMsg:
		return t, tea.Batch(t.handleEvents(msg), t.listen())

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	slog.Debug("unhandled message", slog.String("msg", spew.Sdump(msg)))

	return t, nil
}

package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/breathe/internal/engine"
	"github.com/ayoisaiah/breathe/internal/timeutil"
)

func (t *Timer) headerView() string {
	p := t.snap.Pattern

	header := t.style.Title.Render(p.Name) +
		" " + t.style.Hint.Render("("+p.Ratio()+")")

	if t.snap.Paused {
		header += " " + t.style.Secondary.Render("[Paused]")
	}

	return header
}

func (t *Timer) phaseView() string {
	snap := t.snap

	var s strings.Builder

	switch snap.State {
	case engine.Idle:
		s.WriteString(t.style.Main.Render("Ready"))
		s.WriteString("\n\n")
		s.WriteString(t.style.Secondary.Render(fmt.Sprintf(
			"%d cycles, %s",
			snap.Cycles,
			timeutil.Clock(snap.TotalSessionTime),
		)))
	default:
		label := strings.ToUpper(snap.Phase.Label())

		s.WriteString(t.style.Phase[snap.Phase].Render(label))
		s.WriteString("  ")
		s.WriteString(t.style.Main.Render(timeutil.Clock(snap.TimeRemaining)))
		s.WriteString("\n\n")
		s.WriteString(t.style.Secondary.Render(
			fmt.Sprintf("Cycle %d/%d", snap.Cycle, snap.Cycles),
		))
		s.WriteString(t.style.Hint.Render(fmt.Sprintf(
			"  %s / %s",
			timeutil.Clock(snap.Elapsed),
			timeutil.Clock(snap.TotalSessionTime),
		)))
	}

	if t.Opts.Display.VisualCues {
		s.WriteString("\n\n")
		s.WriteString(t.progress.ViewAs(snap.Progress))
	}

	return s.String()
}

func (t *Timer) completionView() string {
	c := t.completion

	var s strings.Builder

	s.WriteString(t.style.Main.Render("Session complete"))
	s.WriteString("\n\n")
	s.WriteString(t.style.Secondary.Render(fmt.Sprintf(
		"%d cycles of %s in %s",
		c.Cycles,
		c.Pattern.Name,
		timeutil.Human(c.Elapsed),
	)))

	return s.String()
}

func (t *Timer) helpView() string {
	bindings := []key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
		defaultKeymap.next,
		defaultKeymap.quit,
	}

	return "\n\n" + t.help.ShortHelpView(bindings)
}

func (t *Timer) View() string {
	var s strings.Builder

	s.WriteString(t.headerView())
	s.WriteString("\n\n")

	if t.completion != nil && !t.snap.Active {
		s.WriteString(t.completionView())
	} else {
		s.WriteString(t.phaseView())
	}

	s.WriteString(t.helpView())

	return t.style.Base.Render(s.String())
}

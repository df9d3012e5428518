package timer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/pattern"
)

const (
	padding  = 2
	maxWidth = 60
)

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	next       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next pattern"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Style holds the lipgloss styles used by the timer view.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Phase     map[pattern.Phase]lipgloss.Style
}

func newStyle(display config.DisplayConfig) Style {
	text := lipgloss.Color("#1F2937")
	hint := lipgloss.Color("#6B7280")

	if display.DarkTheme {
		text = lipgloss.Color("#F9FAFB")
		hint = lipgloss.Color("#9CA3AF")
	}

	s := Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(text),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Secondary: lipgloss.NewStyle().Foreground(text),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Phase:     make(map[pattern.Phase]lipgloss.Style),
	}

	for _, phase := range pattern.Phases {
		style := lipgloss.NewStyle().Bold(true)

		if display.VisualCues {
			style = style.Foreground(lipgloss.Color(display.Colors.Color(phase)))
		} else {
			style = style.Foreground(text)
		}

		s.Phase[phase] = style
	}

	return s
}

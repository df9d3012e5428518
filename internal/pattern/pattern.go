// Package pattern defines breathing patterns and the phases that make up a
// breath cycle
package pattern

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Phase is one segment of a breath cycle.
type Phase int

const (
	Inhale Phase = iota
	Hold1
	Exhale
	Hold2
)

// Phases lists every phase in cycle order.
var Phases = [...]Phase{Inhale, Hold1, Exhale, Hold2}

func (p Phase) String() string {
	switch p {
	case Inhale:
		return "inhale"
	case Hold1:
		return "hold1"
	case Exhale:
		return "exhale"
	case Hold2:
		return "hold2"
	}

	return fmt.Sprintf("phase(%d)", int(p))
}

// Label is the instruction shown to the user during the phase.
func (p Phase) Label() string {
	switch p {
	case Inhale:
		return "Breathe in"
	case Exhale:
		return "Breathe out"
	case Hold1, Hold2:
		return "Hold"
	}

	return ""
}

// IsHold reports whether the phase is one of the two holds.
func (p Phase) IsHold() bool {
	return p == Hold1 || p == Hold2
}

// Difficulty grades how demanding a pattern is.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
	Any          Difficulty = "any"
)

var (
	errNegativeDuration = errors.New("phase durations cannot be negative")
	errNoBreath         = errors.New("inhale and exhale cannot both be zero")
	errMissingName      = errors.New("pattern name cannot be empty")
)

// Pattern is a breathing technique defined by the duration of its four
// phases. A zero hold is skipped entirely.
type Pattern struct {
	ID           string        `json:"id"                     yaml:"id"                     mapstructure:"id"`
	Name         string        `json:"name"                   yaml:"name"                   mapstructure:"name"`
	Description  string        `json:"description"            yaml:"description"            mapstructure:"description"`
	Category     string        `json:"category,omitempty"     yaml:"category,omitempty"     mapstructure:"category"`
	Difficulty   Difficulty    `json:"difficulty,omitempty"   yaml:"difficulty,omitempty"   mapstructure:"difficulty"`
	Instructions string        `json:"instructions,omitempty" yaml:"instructions,omitempty" mapstructure:"instructions"`
	Benefits     []string      `json:"benefits,omitempty"     yaml:"benefits,omitempty"     mapstructure:"benefits"`
	Inhale       time.Duration `json:"inhale"                 yaml:"inhale"                 mapstructure:"inhale"`
	Hold1        time.Duration `json:"hold1"                  yaml:"hold1"                  mapstructure:"hold1"`
	Exhale       time.Duration `json:"exhale"                 yaml:"exhale"                 mapstructure:"exhale"`
	Hold2        time.Duration `json:"hold2"                  yaml:"hold2"                  mapstructure:"hold2"`
}

// Duration returns the configured length of the given phase.
func (p *Pattern) Duration(phase Phase) time.Duration {
	switch phase {
	case Inhale:
		return p.Inhale
	case Hold1:
		return p.Hold1
	case Exhale:
		return p.Exhale
	case Hold2:
		return p.Hold2
	}

	return 0
}

// CycleDuration is the length of one full inhale to hold2 traversal.
func (p *Pattern) CycleDuration() time.Duration {
	return p.Inhale + p.Hold1 + p.Exhale + p.Hold2
}

// Timing validates only the phase durations.
func (p *Pattern) Timing() error {
	for _, phase := range Phases {
		if p.Duration(phase) < 0 {
			return fmt.Errorf("%w: %s is %v", errNegativeDuration, phase, p.Duration(phase))
		}
	}

	if p.Inhale == 0 && p.Exhale == 0 {
		return errNoBreath
	}

	return nil
}

// Validate checks a pattern before it is saved as a preset.
func (p *Pattern) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errMissingName
	}

	return p.Timing()
}

// Ratio renders the phase durations in seconds, e.g. "4-7-8-0".
func (p *Pattern) Ratio() string {
	parts := make([]string, len(Phases))

	for i, phase := range Phases {
		parts[i] = formatSeconds(p.Duration(phase))
	}

	return strings.Join(parts, "-")
}

func formatSeconds(d time.Duration) string {
	s := d.Seconds()
	if s == float64(int64(s)) {
		return fmt.Sprintf("%d", int64(s))
	}

	return fmt.Sprintf("%g", s)
}

// Slug derives a preset identifier from a pattern name.
func Slug(name string) string {
	var b strings.Builder

	dash := false

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)

			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')

			dash = true
		}
	}

	return "custom-" + strings.TrimSuffix(b.String(), "-")
}

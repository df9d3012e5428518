// Package config loads breathe settings from the config file, first-run
// prompts, and command-line flags.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/breathe/internal/pattern"
)

type (
	// Config holds all configuration settings.
	Config struct {
		CLI           CLIConfig          `mapstructure:"-"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Display       DisplayConfig      `mapstructure:"display"`
		Session       SessionConfig      `mapstructure:"session"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// SessionConfig holds the defaults for a breathing session.
	SessionConfig struct {
		Pattern   string `mapstructure:"pattern"`
		Cycles    int    `mapstructure:"cycles"`
		AutoStart bool   `mapstructure:"auto_start"`
	}

	// SoundConfig holds audio cue settings. Empty cue paths are silent.
	SoundConfig struct {
		Inhale           string  `mapstructure:"inhale"`
		Exhale           string  `mapstructure:"exhale"`
		Hold             string  `mapstructure:"hold"`
		Complete         string  `mapstructure:"complete"`
		Background       string  `mapstructure:"background"`
		GuidanceVolume   float64 `mapstructure:"guidance_volume"`
		BackgroundVolume float64 `mapstructure:"background_volume"`
		Enabled          bool    `mapstructure:"enabled"`

		// Dir is where relative cue names are looked up.
		Dir string `mapstructure:"-"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Colors     PhaseColors `mapstructure:"colors"`
		VisualCues bool        `mapstructure:"visual_cues"`
		DarkTheme  bool        `mapstructure:"dark_theme"`
	}

	// PhaseColors maps each phase to a hex colour.
	PhaseColors struct {
		Inhale string `mapstructure:"inhale"`
		Hold1  string `mapstructure:"hold1"`
		Exhale string `mapstructure:"exhale"`
		Hold2  string `mapstructure:"hold2"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// CLIConfig holds options that only come from the command line.
	CLIConfig struct {
		Custom *pattern.Pattern
		Debug  bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Color returns the configured colour for a phase.
func (p PhaseColors) Color(phase pattern.Phase) string {
	switch phase {
	case pattern.Inhale:
		return p.Inhale
	case pattern.Hold1:
		return p.Hold1
	case pattern.Exhale:
		return p.Exhale
	case pattern.Hold2:
		return p.Hold2
	}

	return p.Inhale
}

// Path resolves a sound cue name. Absolute paths are returned unchanged.
func (s SoundConfig) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || s.Dir == "" {
		return name
	}

	return filepath.Join(s.Dir, name)
}

// WithSoundDir sets the directory relative sound cue names resolve against.
func WithSoundDir(dir string) Option {
	return func(c *Config) error {
		c.Sound.Dir = dir
		return nil
	}
}

// New creates a new Config, applies options in order, and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

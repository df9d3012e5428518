package config

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

const (
	MinCycles = 1
	MaxCycles = 999
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var soundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateSession(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	return c.validateSound()
}

func (c *Config) validateSession() error {
	if strings.TrimSpace(c.Session.Pattern) == "" {
		return errEmptyPattern
	}

	if c.Session.Cycles < MinCycles || c.Session.Cycles > MaxCycles {
		return errInvalidCycles.Fmt(MinCycles, MaxCycles)
	}

	return nil
}

func (c *Config) validateDisplay() error {
	colors := []struct {
		name  string
		value string
	}{
		{"inhale", c.Display.Colors.Inhale},
		{"hold1", c.Display.Colors.Hold1},
		{"exhale", c.Display.Colors.Exhale},
		{"hold2", c.Display.Colors.Hold2},
	}

	for _, col := range colors {
		if !hexColorRegex.MatchString(col.value) {
			return errInvalidColor.Fmt(col.name, col.value)
		}
	}

	return nil
}

func (c *Config) validateSound() error {
	s := c.Sound

	if s.GuidanceVolume < 0 || s.GuidanceVolume > 1 {
		return errInvalidVolume.Fmt("guidance", s.GuidanceVolume)
	}

	if s.BackgroundVolume < 0 || s.BackgroundVolume > 1 {
		return errInvalidVolume.Fmt("background", s.BackgroundVolume)
	}

	if !s.Enabled {
		return nil
	}

	cues := []struct {
		group string
		name  string
	}{
		{"inhale", s.Inhale},
		{"exhale", s.Exhale},
		{"hold", s.Hold},
		{"complete", s.Complete},
		{"background", s.Background},
	}

	for _, cue := range cues {
		if cue.name == "" {
			continue
		}

		if err := validateSoundFile(cue.group, s.Path(cue.name)); err != nil {
			return err
		}
	}

	return nil
}

func validateSoundFile(group, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(soundExts, ext) {
		return errInvalidSoundFormat.Fmt(path)
	}

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(group, path)
	}

	return nil
}

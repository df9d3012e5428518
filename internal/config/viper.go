package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keySessionPattern        = "session.pattern"
	keySessionCycles         = "session.cycles"
	keySessionAutoStart      = "session.auto_start"
	keySoundEnabled          = "sound.enabled"
	keySoundGuidanceVolume   = "sound.guidance_volume"
	keySoundBackgroundVolume = "sound.background_volume"
	keySoundInhale           = "sound.inhale"
	keySoundExhale           = "sound.exhale"
	keySoundHold             = "sound.hold"
	keySoundComplete         = "sound.complete"
	keySoundBackground       = "sound.background"
	keyVisualCues            = "display.visual_cues"
	keyDarkTheme             = "display.dark_theme"
	keyColorInhale           = "display.colors.inhale"
	keyColorHold1            = "display.colors.hold1"
	keyColorExhale           = "display.colors.exhale"
	keyColorHold2            = "display.colors.hold2"
	keyNotificationsEnabled  = "notifications.enabled"
	keySessionCmd            = "settings.cmd"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values already gathered
// from the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keySessionPattern, "box")
	v.SetDefault(keySessionCycles, 5)
	v.SetDefault(keySessionAutoStart, false)
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keySoundGuidanceVolume, 0.7)
	v.SetDefault(keySoundBackgroundVolume, 1.0)
	v.SetDefault(keySoundInhale, "")
	v.SetDefault(keySoundExhale, "")
	v.SetDefault(keySoundHold, "")
	v.SetDefault(keySoundComplete, "")
	v.SetDefault(keySoundBackground, "")
	v.SetDefault(keyVisualCues, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyColorInhale, "#8B5CF6")
	v.SetDefault(keyColorHold1, "#4F46E5")
	v.SetDefault(keyColorExhale, "#3B82F6")
	v.SetDefault(keyColorHold2, "#7C3AED")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")

	if c.Session.Pattern != "" {
		v.SetDefault(keySessionPattern, c.Session.Pattern)
	}

	if c.Session.Cycles != 0 {
		v.SetDefault(keySessionCycles, c.Session.Cycles)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	return nil
}

// ParseDuration parses a phase duration. A bare number is read as seconds.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	secs, err := time.ParseDuration(s + "s")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return secs, nil
}

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCLIOptions(t *testing.T) {
	c := &Config{
		Session: SessionConfig{Pattern: "box", Cycles: 5},
		Sound: SoundConfig{
			Enabled:    true,
			Background: "rain.ogg",
		},
		Display:       DisplayConfig{VisualCues: true},
		Notifications: NotificationConfig{Enabled: true},
	}

	err := applyCLIOptions(c, CLIOptions{
		Pattern:       "478",
		Cycles:        3,
		AmbientSound:  "off",
		SessionCmd:    "notify-send done",
		DisableNotify: true,
		Mute:          true,
		NoVisualCues:  true,
		AutoStart:     true,
		Debug:         true,
	})
	require.NoError(t, err)

	assert.Equal(t, "478", c.Session.Pattern)
	assert.Equal(t, 3, c.Session.Cycles)
	assert.True(t, c.Session.AutoStart)
	assert.Empty(t, c.Sound.Background)
	assert.False(t, c.Sound.Enabled)
	assert.False(t, c.Display.VisualCues)
	assert.False(t, c.Notifications.Enabled)
	assert.Equal(t, "notify-send done", c.Settings.Cmd)
	assert.True(t, c.CLI.Debug)
	assert.Nil(t, c.CLI.Custom)
}

func TestApplyCLIOptionsKeepsConfig(t *testing.T) {
	c := &Config{
		Session: SessionConfig{Pattern: "box", Cycles: 5},
		Sound:   SoundConfig{Background: "rain.ogg"},
	}

	err := applyCLIOptions(c, CLIOptions{})
	require.NoError(t, err)

	assert.Equal(t, "box", c.Session.Pattern)
	assert.Equal(t, 5, c.Session.Cycles)
	assert.Equal(t, "rain.ogg", c.Sound.Background)
}

func TestCustomPattern(t *testing.T) {
	p, err := customPattern(CLIOptions{
		Inhale: "4",
		Hold1:  "7s",
		Exhale: "8",
	})
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "custom", p.ID)
	assert.Equal(t, "Custom 4-7-8-0", p.Name)
	assert.Equal(t, 4*time.Second, p.Inhale)
	assert.Equal(t, 7*time.Second, p.Hold1)
	assert.Equal(t, 8*time.Second, p.Exhale)
	assert.Zero(t, p.Hold2)
}

func TestCustomPatternFractional(t *testing.T) {
	p, err := customPattern(CLIOptions{Inhale: "5.5", Exhale: "5.5"})
	require.NoError(t, err)

	assert.Equal(t, 5500*time.Millisecond, p.Inhale)
	assert.Equal(t, "Custom 5.5-0-5.5-0", p.Name)
}

func TestCustomPatternErrors(t *testing.T) {
	_, err := customPattern(CLIOptions{Inhale: "soon"})
	assert.True(t, errors.Is(err, errInvalidCLIDuration))

	_, err = customPattern(CLIOptions{Hold1: "4"})
	assert.True(t, errors.Is(err, errInvalidCustomPattern))

	_, err = customPattern(CLIOptions{Inhale: "-2", Exhale: "4"})
	assert.True(t, errors.Is(err, errInvalidCustomPattern))
}

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		in   string
		want time.Duration
	}{
		{"4", 4 * time.Second},
		{"1.5", 1500 * time.Millisecond},
		{"500ms", 500 * time.Millisecond},
		{" 2m ", 2 * time.Minute},
	}

	for _, tc := range testCases {
		got, err := ParseDuration(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseDuration("abc")
	assert.Error(t, err)
}

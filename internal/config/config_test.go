package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/breathe/internal/config"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			Pattern:   "box",
			Cycles:    5,
			AutoStart: false,
		},
		Sound: config.SoundConfig{
			GuidanceVolume:   0.7,
			BackgroundVolume: 1,
			Enabled:          true,
		},
		Display: config.DisplayConfig{
			Colors: config.PhaseColors{
				Inhale: "#8B5CF6",
				Hold1:  "#4F46E5",
				Exhale: "#3B82F6",
				Hold2:  "#7C3AED",
			},
			VisualCues: true,
			DarkTheme:  true,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
	}
}

const modifiedConfig = `session:
  pattern: "478"
  cycles: 8
  auto_start: true
sound:
  enabled: false
  guidance_volume: 0.4
  background_volume: 0.2
display:
  visual_cues: false
  dark_theme: false
  colors:
    inhale: "#111111"
    hold1: "#222222"
    exhale: "#333333"
    hold2: "#444444"
notifications:
  enabled: false
settings:
  cmd: "echo done"
`

func TestViperWriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Contains(t, string(b), "guidance_volume: 0.7")
	assert.Contains(t, string(b), "pattern: box")
}

func TestViperReadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	err := os.WriteFile(configPath, []byte(modifiedConfig), 0o600)
	require.NoError(t, err)

	want := &config.Config{
		Session: config.SessionConfig{
			Pattern:   "478",
			Cycles:    8,
			AutoStart: true,
		},
		Sound: config.SoundConfig{
			GuidanceVolume:   0.4,
			BackgroundVolume: 0.2,
			Enabled:          false,
		},
		Display: config.DisplayConfig{
			Colors: config.PhaseColors{
				Inhale: "#111111",
				Hold1:  "#222222",
				Exhale: "#333333",
				Hold2:  "#444444",
			},
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
		},
		Settings: config.SettingsConfig{
			Cmd: "echo done",
		},
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestViperPartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	err := os.WriteFile(configPath, []byte("session:\n  cycles: 12\n"), 0o600)
	require.NoError(t, err)

	want := defaultConfig()
	want.Session.Cycles = 12

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestInvalidConfigFile(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "zero cycles",
			content: "session:\n  cycles: 0\n",
		},
		{
			name:    "too many cycles",
			content: "session:\n  cycles: 1000\n",
		},
		{
			name:    "volume out of range",
			content: "sound:\n  guidance_volume: 1.5\n",
		},
		{
			name:    "bad colour",
			content: "display:\n  colors:\n    inhale: purple\n",
		},
		{
			name:    "unsupported sound format",
			content: "sound:\n  inhale: /tmp/inhale.aiff\n",
		},
		{
			name:    "missing sound file",
			content: "sound:\n  complete: does-not-exist.mp3\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yml")

			err := os.WriteFile(configPath, []byte(tc.content), 0o600)
			require.NoError(t, err)

			_, err = config.New(
				config.WithSoundDir(tmpDir),
				config.WithViperConfig(configPath),
			)
			assert.Error(t, err)
		})
	}
}

func TestSoundPath(t *testing.T) {
	s := config.SoundConfig{Dir: "/data/sounds"}

	assert.Equal(t, "", s.Path(""))
	assert.Equal(t, "/tmp/bell.ogg", s.Path("/tmp/bell.ogg"))
	assert.Equal(t, filepath.Join("/data/sounds", "bell.ogg"), s.Path("bell.ogg"))
}

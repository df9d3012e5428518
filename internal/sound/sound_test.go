package sound

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/pattern"
)

func writeSilence(t *testing.T, rate beep.SampleRate, d time.Duration) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cue.wav")

	f, err := os.Create(path)
	require.NoError(t, err)

	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}

	err = wav.Encode(f, beep.Silence(rate.N(d)), format)
	require.NoError(t, err)

	return path
}

func TestGain(t *testing.T) {
	testCases := []struct {
		volume float64
		gain   float64
		silent bool
	}{
		{1, 0, false},
		{0.5, -1, false},
		{0.25, -2, false},
		{0, 0, true},
		{-1, 0, true},
	}

	for _, tc := range testCases {
		gain, silent := Gain(tc.volume)
		assert.InDelta(t, tc.gain, gain, 1e-9)
		assert.Equal(t, tc.silent, silent)
	}

	gain, _ := Gain(0.7)
	assert.InDelta(t, 0.7, math.Pow(2, gain), 1e-9)
}

func TestCueFor(t *testing.T) {
	testCases := []struct {
		phase pattern.Phase
		d     time.Duration
		want  Cue
		ok    bool
	}{
		{pattern.Inhale, 4 * time.Second, CueInhale, true},
		{pattern.Exhale, 8 * time.Second, CueExhale, true},
		{pattern.Hold1, 7 * time.Second, CueHold, true},
		{pattern.Hold2, 4 * time.Second, CueHold, true},
		{pattern.Hold2, 0, CueHold, false},
	}

	for _, tc := range testCases {
		cue, ok := CueFor(tc.phase, tc.d)
		assert.Equal(t, tc.ok, ok, tc.phase.String())

		if ok {
			assert.Equal(t, tc.want, cue)
		}
	}
}

func TestLoadResamples(t *testing.T) {
	path := writeSilence(t, 22050, 500*time.Millisecond)

	buf, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, sampleRate, buf.Format().SampleRate)
	assert.InDelta(t, sampleRate.N(500*time.Millisecond), buf.Len(), 512)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cue.aiff")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	_, err := load(path)
	assert.ErrorIs(t, err, errInvalidSoundFormat)
}

func TestDisabledPlayer(t *testing.T) {
	var played int

	orig := play
	play = func(...beep.Streamer) { played++ }

	t.Cleanup(func() { play = orig })

	p, err := New(config.SoundConfig{
		Inhale:  "missing.wav",
		Enabled: false,
	})
	require.NoError(t, err)

	p.PlayPhase(pattern.Inhale, time.Second)
	p.Play(CueComplete)
	p.StartBackground()

	assert.Zero(t, played)
}

func TestMissingCueFile(t *testing.T) {
	_, err := New(config.SoundConfig{
		Exhale:  filepath.Join(t.TempDir(), "missing.wav"),
		Enabled: true,
	})
	assert.ErrorIs(t, err, errLoadCue)
}

func TestNilPlayer(t *testing.T) {
	var p *Player

	assert.NotPanics(t, func() {
		p.PlayPhase(pattern.Exhale, time.Second)
		p.StartBackground()
		p.SetBackgroundPaused(true)
		p.Close()
	})
}

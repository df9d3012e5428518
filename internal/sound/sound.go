// Package sound plays the audio cues that accompany a breathing session
package sound

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/pattern"
)

const (
	sampleRate beep.SampleRate = 44100
	resampleQuality           = 4
)

// Cue names a guidance sound.
type Cue string

const (
	CueInhale   Cue = "inhale"
	CueExhale   Cue = "exhale"
	CueHold     Cue = "hold"
	CueComplete Cue = "complete"
)

var (
	speakerOnce sync.Once
	speakerErr  error

	// play hands streamers to the audio device.
	play = speaker.Play
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	return speakerErr
}

// Player plays phase cues and an optional looping background track.
type Player struct {
	cues             map[Cue]*beep.Buffer
	background       *beep.Buffer
	ctrl             *beep.Ctrl
	guidanceVolume   float64
	backgroundVolume float64
	enabled          bool
}

// New loads every configured cue into memory. A player built from a
// disabled config plays nothing.
func New(cfg config.SoundConfig) (*Player, error) {
	p := &Player{
		cues:             make(map[Cue]*beep.Buffer),
		guidanceVolume:   cfg.GuidanceVolume,
		backgroundVolume: cfg.BackgroundVolume,
		enabled:          cfg.Enabled,
	}

	if !cfg.Enabled {
		return p, nil
	}

	files := map[Cue]string{
		CueInhale:   cfg.Inhale,
		CueExhale:   cfg.Exhale,
		CueHold:     cfg.Hold,
		CueComplete: cfg.Complete,
	}

	for cue, name := range files {
		if name == "" {
			continue
		}

		buf, err := load(cfg.Path(name))
		if err != nil {
			return nil, errLoadCue.Fmt(cue).Wrap(err)
		}

		p.cues[cue] = buf
	}

	if cfg.Background != "" {
		buf, err := load(cfg.Path(cfg.Background))
		if err != nil {
			return nil, errLoadCue.Fmt("background").Wrap(err)
		}

		p.background = buf
	}

	if len(p.cues) == 0 && p.background == nil {
		return p, nil
	}

	if err := initSpeaker(); err != nil {
		return nil, errSpeakerInit.Wrap(err)
	}

	return p, nil
}

// CueFor returns the cue for entering a phase. Holds of zero length are
// never entered, so they have no cue.
func CueFor(phase pattern.Phase, d time.Duration) (Cue, bool) {
	switch phase {
	case pattern.Inhale:
		return CueInhale, true
	case pattern.Exhale:
		return CueExhale, true
	case pattern.Hold1, pattern.Hold2:
		return CueHold, d > 0
	}

	return "", false
}

// PlayPhase plays the cue for entering phase.
func (p *Player) PlayPhase(phase pattern.Phase, d time.Duration) {
	cue, ok := CueFor(phase, d)
	if !ok {
		return
	}

	p.Play(cue)
}

// Play plays a cue once at the guidance volume.
func (p *Player) Play(cue Cue) {
	if p == nil || !p.enabled {
		return
	}

	buf, ok := p.cues[cue]
	if !ok {
		return
	}

	play(withVolume(buf.Streamer(0, buf.Len()), p.guidanceVolume))
}

// StartBackground starts the background loop if one is configured.
func (p *Player) StartBackground() {
	if p == nil || !p.enabled || p.background == nil {
		return
	}

	if p.ctrl != nil {
		p.SetBackgroundPaused(false)
		return
	}

	loop := beep.Loop(-1, p.background.Streamer(0, p.background.Len()))
	p.ctrl = &beep.Ctrl{Streamer: loop}

	play(withVolume(p.ctrl, p.backgroundVolume))
}

// SetBackgroundPaused pauses or resumes the background loop.
func (p *Player) SetBackgroundPaused(paused bool) {
	if p == nil || p.ctrl == nil {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops all playback.
func (p *Player) Close() {
	if p == nil || p.ctrl == nil {
		return
	}

	speaker.Clear()

	p.ctrl = nil
}

// Gain converts a linear 0..1 volume into the exponent used by
// effects.Volume with base 2.
func Gain(v float64) (gain float64, silent bool) {
	if v <= 0 {
		return 0, true
	}

	return math.Log2(v), false
}

func withVolume(s beep.Streamer, v float64) beep.Streamer {
	gain, silent := Gain(v)

	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   gain,
		Silent:   silent,
	}
}

// decode opens a sound file with the decoder that matches its extension.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		err = errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, err
	}

	return stream, format, nil
}

// load decodes a sound file into memory at the speaker sample rate.
func load(path string) (*beep.Buffer, error) {
	stream, format, err := decode(path)
	if err != nil {
		return nil, err
	}

	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, stream)
	}

	out := format
	out.SampleRate = sampleRate

	buf := beep.NewBuffer(out)
	buf.Append(s)

	return buf, nil
}

package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/pattern"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Pattern       string
	Inhale        string
	Hold1         string
	Exhale        string
	Hold2         string
	AmbientSound  string
	SessionCmd    string
	Cycles        uint
	DisableNotify bool
	Mute          bool
	NoVisualCues  bool
	AutoStart     bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Pattern:       ctx.String("pattern"),
			Cycles:        ctx.Uint("cycles"),
			Inhale:        ctx.String("inhale"),
			Hold1:         ctx.String("hold1"),
			Exhale:        ctx.String("exhale"),
			Hold2:         ctx.String("hold2"),
			AmbientSound:  ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			Mute:          ctx.Bool("mute"),
			NoVisualCues:  ctx.Bool("no-visual-cues"),
			AutoStart:     ctx.Bool("start"),
			Debug:         ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Pattern != "" {
		c.Session.Pattern = opts.Pattern
	}

	if opts.Cycles > 0 {
		c.Session.Cycles = int(opts.Cycles)
	}

	custom, err := customPattern(opts)
	if err != nil {
		return err
	}

	c.CLI.Custom = custom

	if opts.AmbientSound != "" {
		if opts.AmbientSound == "off" {
			c.Sound.Background = ""
		} else {
			c.Sound.Background = opts.AmbientSound
		}
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Mute {
		c.Sound.Enabled = false
	}

	if opts.NoVisualCues {
		c.Display.VisualCues = false
	}

	if opts.AutoStart {
		c.Session.AutoStart = true
	}

	c.CLI.Debug = opts.Debug

	return nil
}

// customPattern builds a one-off pattern from the phase duration flags. It
// returns nil if none of them were set.
func customPattern(opts CLIOptions) (*pattern.Pattern, error) {
	p := &pattern.Pattern{
		ID:          "custom",
		Name:        "Custom",
		Description: "Pattern set from the command line",
	}

	durations := []struct {
		dst   *time.Duration
		name  string
		value string
	}{
		{&p.Inhale, "inhale", opts.Inhale},
		{&p.Hold1, "hold1", opts.Hold1},
		{&p.Exhale, "exhale", opts.Exhale},
		{&p.Hold2, "hold2", opts.Hold2},
	}

	var set bool

	for _, d := range durations {
		if d.value == "" {
			continue
		}

		dur, err := ParseDuration(d.value)
		if err != nil {
			return nil, errInvalidCLIDuration.Fmt(d.name).Wrap(err)
		}

		*d.dst = dur
		set = true
	}

	if !set {
		return nil, nil
	}

	if err := p.Timing(); err != nil {
		return nil, errInvalidCustomPattern.Wrap(err)
	}

	p.Name = "Custom " + p.Ratio()

	return p, nil
}

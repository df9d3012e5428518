package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/breathe/internal/pattern"
)

const asciiLogo = `
██████╗ ██████╗ ███████╗ █████╗ ████████╗██╗  ██╗███████╗
██╔══██╗██╔══██╗██╔════╝██╔══██╗╚══██╔══╝██║  ██║██╔════╝
██████╔╝██████╔╝█████╗  ███████║   ██║   ███████║█████╗
██╔══██╗██╔══██╗██╔══╝  ██╔══██║   ██║   ██╔══██║██╔══╝
██████╔╝██║  ██║███████╗██║  ██║   ██║   ██║  ██║███████╗
╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Pattern string
	Cycles  int
}

// WithPromptConfig returns an Option that asks for the session defaults the
// first time the program runs, i.e. when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func patternOptions() []huh.Option[string] {
	builtin := pattern.Builtin()
	opts := make([]huh.Option[string], 0, len(builtin))

	for _, p := range builtin {
		label := fmt.Sprintf("%s (%s)", p.Name, p.Ratio())
		opt := huh.NewOption(label, p.ID)

		if p.ID == pattern.DefaultID {
			opt = opt.Selected(true)
		}

		opts = append(opts, opt)
	}

	return opts
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Breathe for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'breathe edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default breathing pattern").
				Options(patternOptions()...).
				Value(&opts.Pattern),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Cycles per session").
				Options(
					huh.NewOption("3 cycles", 3),
					huh.NewOption("5 cycles", 5).Selected(true),
					huh.NewOption("10 cycles", 10),
					huh.NewOption("20 cycles", 20),
				).
				Value(&opts.Cycles),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Session.Pattern = opts.Pattern
	c.Session.Cycles = opts.Cycles
}

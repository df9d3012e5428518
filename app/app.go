// Package app wires the breathe command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the breathe app instance.
func Get() *cli.App {
	breatheApp := &cli.App{
		Name: "breathe",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Breathe is a guided breathing timer for the command-line. It paces you
		through the inhale, hold, and exhale phases of techniques such as box
		breathing and 4-7-8, and keeps a history of your sessions.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:    "patterns",
				Aliases: []string{"ls"},
				Usage:   "List the built-in patterns and your presets",
				Flags: []cli.Flag{
					searchFlag,
					categoryFlag,
					favoritesFlag,
					jsonFlag,
				},
				Action: patternsAction,
			},
			{
				Name:      "favorite",
				Aliases:   []string{"fav"},
				Usage:     "Mark or unmark a pattern as a favourite",
				ArgsUsage: "<pattern-id>",
				Action:    favoriteAction,
			},
			{
				Name:  "preset",
				Usage: "Manage custom breathing patterns",
				Subcommands: []*cli.Command{
					{
						Name:   "save",
						Usage:  "Save a custom pattern as a preset",
						Flags:  presetFlags(),
						Action: presetSaveAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete a preset",
						ArgsUsage: "<preset-id>",
						Action:    presetDeleteAction,
					},
					{
						Name:      "export",
						Usage:     "Write all presets to a YAML file",
						ArgsUsage: "<file>",
						Action:    presetExportAction,
					},
					{
						Name:      "import",
						Usage:     "Load presets from a YAML file",
						ArgsUsage: "<file>",
						Action:    presetImportAction,
					},
				},
			},
			{
				Name:   "history",
				Usage:  "List the sessions recorded within a time period",
				Flags:  windowFlags(),
				Action: historyAction,
				Subcommands: []*cli.Command{
					{
						Name:   "delete",
						Usage:  "Permanently delete the sessions recorded within a time period",
						Flags:  []cli.Flag{sinceFlag, untilFlag},
						Action: historyDeleteAction,
					},
				},
			},
			{
				Name: "stats",
				Usage: `
				Track your practice with statistics for a time period. Defaults to a
				reporting period of 7 days`,
				Flags:  windowFlags(),
				Action: statsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
		},
		Flags:  timerFlags(),
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return breatheApp
}

package app

import "github.com/urfave/cli/v2"

var (
	patternFlag = &cli.StringFlag{
		Name:    "pattern",
		Aliases: []string{"p"},
		Usage:   "The breathing pattern to practise. Use 'last' for the most recently used pattern (default: box)",
	}

	cyclesFlag = &cli.UintFlag{
		Name:    "cycles",
		Aliases: []string{"c"},
		Usage:   "The number of breath cycles in a session (default: 5)",
	}

	inhaleFlag = &cli.StringFlag{
		Name:  "inhale",
		Usage: "Inhale duration for a custom pattern in seconds or as a duration (e.g. 4 or 4.5s)",
	}

	hold1Flag = &cli.StringFlag{
		Name:  "hold1",
		Usage: "Hold after inhaling for a custom pattern. Zero skips the phase",
	}

	exhaleFlag = &cli.StringFlag{
		Name:  "exhale",
		Usage: "Exhale duration for a custom pattern",
	}

	hold2Flag = &cli.StringFlag{
		Name:  "hold2",
		Usage: "Hold after exhaling for a custom pattern. Zero skips the phase",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Play a background sound continuously during a session. Disable it by setting to 'off'",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Disable all sounds",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed session",
	}

	noVisualCuesFlag = &cli.BoolFlag{
		Name:  "no-visual-cues",
		Usage: "Do not colour the display by phase",
	}

	startFlag = &cli.BoolFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Begin the session immediately",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start of the reporting period (e.g. '2 weeks ago', 'yesterday', '2025-01-30'). Defaults to 7 days ago",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "End of the reporting period. Defaults to now",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	searchFlag = &cli.StringFlag{
		Name:  "search",
		Usage: "Only list patterns whose name or description contains this term",
	}

	categoryFlag = &cli.StringFlag{
		Name:  "category",
		Usage: "Only list patterns in this category",
	}

	favoritesFlag = &cli.BoolFlag{
		Name:    "favorites",
		Aliases: []string{"f"},
		Usage:   "Only list favourite patterns",
	}

	nameFlag = &cli.StringFlag{
		Name:     "name",
		Aliases:  []string{"n"},
		Usage:    "The name of the preset",
		Required: true,
	}

	descriptionFlag = &cli.StringFlag{
		Name:  "description",
		Usage: "A short description of the preset",
	}

	presetCategoryFlag = &cli.StringFlag{
		Name:  "category",
		Usage: "The category the preset belongs to",
	}
)

func timerFlags() []cli.Flag {
	return []cli.Flag{
		patternFlag,
		cyclesFlag,
		inhaleFlag,
		hold1Flag,
		exhaleFlag,
		hold2Flag,
		soundFlag,
		muteFlag,
		disableNotificationFlag,
		sessionCmdFlag,
		noVisualCuesFlag,
		startFlag,
		noColorFlag,
		debugFlag,
	}
}

func windowFlags() []cli.Flag {
	return []cli.Flag{sinceFlag, untilFlag, jsonFlag}
}

func presetFlags() []cli.Flag {
	return []cli.Flag{
		nameFlag,
		descriptionFlag,
		presetCategoryFlag,
		&cli.StringFlag{Name: "inhale", Usage: inhaleFlag.Usage, Required: true},
		hold1Flag,
		&cli.StringFlag{Name: "exhale", Usage: exhaleFlag.Usage, Required: true},
		hold2Flag,
	}
}

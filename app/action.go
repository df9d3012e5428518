package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/osutil"
	"github.com/ayoisaiah/breathe/internal/pathutil"
	"github.com/ayoisaiah/breathe/internal/sound"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/internal/ui"
	"github.com/ayoisaiah/breathe/report"
	"github.com/ayoisaiah/breathe/stats"
	"github.com/ayoisaiah/breathe/store"
	"github.com/ayoisaiah/breathe/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envBreatheNoColor = "BREATHE_NO_COLOR"

	defaultPeriodDays = 7

	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// parseDate interprets absolute dates as well as relative ones such as
// "3 days ago" against now.
func parseDate(s string, now time.Time) (time.Time, error) {
	d, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: now,
	}, s)
	if err != nil {
		return time.Time{}, err
	}

	return d.Time, nil
}

// parseWindow resolves the reporting period. It defaults to the last seven
// days, ending now.
func parseWindow(since, until string, now time.Time) (start, end time.Time, err error) {
	start = timeutil.RoundToStart(now.AddDate(0, 0, -(defaultPeriodDays - 1)))
	end = now

	if since != "" {
		start, err = parseDate(since, now)
		if err != nil {
			return start, end, errInvalidStartDate.Fmt(since).Wrap(err)
		}
	}

	if until != "" {
		end, err = parseDate(until, now)
		if err != nil {
			return start, end, errInvalidEndDate.Fmt(until).Wrap(err)
		}
	}

	if end.Before(start) {
		return start, end, errInvalidDateRange
	}

	return start, end, nil
}

func statsOpts(ctx *cli.Context) (*stats.Opts, error) {
	start, end, err := parseWindow(
		ctx.String("since"),
		ctx.String("until"),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	return &stats.Opts{
		StartTime: start,
		EndTime:   end,
		Stdout:    config.Stdout,
		Stdin:     config.Stdin,
		JSON:      ctx.Bool("json"),
	}, nil
}

func openStore() (*store.Client, error) {
	return store.NewClient(pathutil.DBFilePath())
}

// withStore runs fn against the database and closes it afterwards.
func withStore(fn func(db store.DB) error) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	return fn(db)
}

// editConfigAction handles the edit-config command which opens the breathe
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	args, err := shellquote.Split(osutil.Editor())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	args = append(args, pathutil.ConfigFilePath())

	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// historyAction handles the history command and prints a table of all the
// sessions started within a time period.
func historyAction(ctx *cli.Context) error {
	opts, err := statsOpts(ctx)
	if err != nil {
		return err
	}

	return withStore(func(db store.DB) error {
		return stats.List(db, opts)
	})
}

func historyDeleteAction(ctx *cli.Context) error {
	opts, err := statsOpts(ctx)
	if err != nil {
		return err
	}

	return withStore(func(db store.DB) error {
		return stats.Delete(db, opts)
	})
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	opts, err := statsOpts(ctx)
	if err != nil {
		return err
	}

	return withStore(func(db store.DB) error {
		return stats.Show(db, opts)
	})
}

// statusAction handles the status command and prints the status of the
// currently running timer.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
		config.Stdout,
	)
}

// defaultAction starts a breathing session.
func defaultAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithSoundDir(pathutil.SoundDir()),
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	patterns, err := catalog(db)
	if err != nil {
		return err
	}

	resolveLastPattern(db, cfg, patterns)

	player, err := sound.New(cfg.Sound)
	if err != nil {
		report.Warn(err)
		slog.Warn("continuing without sound", slog.Any("error", err))

		player = nil
	}

	t, err := timer.New(
		db,
		cfg,
		patterns,
		timer.WithSound(player),
		timer.WithStatusFile(pathutil.StatusFilePath()),
	)
	if err != nil {
		return err
	}

	return t.Run()
}

// setupLogging sends structured logs to a rotated file in the data
// directory.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)
}

func createDataDirs() error {
	dirs := []string{
		filepath.Dir(pathutil.DBFilePath()),
		pathutil.SoundDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
			return err
		}
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/breathe/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	for _, env := range []string{envNoColor, envBreatheNoColor} {
		if _, exists := os.LookupEnv(env); exists {
			disableStyling()
		}
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	if err := createDataDirs(); err != nil {
		return err
	}

	setupLogging(ctx.Bool("debug"))

	slog.DebugContext(ctx.Context, "starting breathe", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting breathe")

	return nil
}

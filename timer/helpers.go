package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/breathe/internal/engine"
	"github.com/ayoisaiah/breathe/internal/pattern"
	"github.com/ayoisaiah/breathe/internal/timeutil"
)

// Status represents the status of a running timer.
type Status struct {
	PatternID     string        `json:"pattern_id"`
	PatternName   string        `json:"pattern_name"`
	State         string        `json:"state"`
	Phase         string        `json:"phase"`
	Cycle         int           `json:"cycle"`
	Cycles        int           `json:"cycles"`
	TimeRemaining time.Duration `json:"time_remaining"`
	Progress      float64       `json:"progress"`
}

func statusFromSnapshot(snap engine.Snapshot) Status {
	return Status{
		PatternID:     snap.Pattern.ID,
		PatternName:   snap.Pattern.Name,
		State:         snap.State.String(),
		Phase:         snap.Phase.String(),
		Cycle:         snap.Cycle,
		Cycles:        snap.Cycles,
		TimeRemaining: snap.TimeRemaining.Round(time.Second),
		Progress:      float64(int(snap.Progress*100)) / 100,
	}
}

// String renders the status as a single line, e.g.
// "[Box Breathing 2/5] Breathe in: 00:03".
func (s Status) String() string {
	label := "Idle"

	switch s.State {
	case engine.Paused.String():
		label = "Paused"
	case engine.Completed.String():
		label = "Complete"
	case engine.Running.String():
		for _, p := range pattern.Phases {
			if p.String() == s.Phase {
				label = p.Label()
			}
		}
	}

	return fmt.Sprintf(
		"[%s %d/%d] %s: %s",
		s.PatternName,
		s.Cycle,
		s.Cycles,
		label,
		timeutil.Clock(s.TimeRemaining),
	)
}

// writeStatusFile records the current status if it changed since the last
// write.
func (t *Timer) writeStatusFile() error {
	if t.statusPath == "" {
		return nil
	}

	s := statusFromSnapshot(t.snap)
	if s == t.lastStatus {
		return nil
	}

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.WriteFile(t.statusPath, b, 0o600); err != nil {
		return errWriteStatus.Wrap(err)
	}

	t.lastStatus = s

	return nil
}

func (t *Timer) removeStatusFile() {
	if t.statusPath == "" {
		return
	}

	_ = os.Remove(t.statusPath)
}

// ReportStatus prints the status of a timer running in another process. It
// prints nothing if no timer is running.
func ReportStatus(dbFilePath, statusFilePath string, w io.Writer) error {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(dbFilePath, fileMode, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// the lock was free, so no timer is running
	if err == nil {
		return db.Close()
	}

	if !errors.Is(err, berrors.ErrDatabaseOpen) &&
		!errors.Is(err, berrors.ErrTimeout) {
		return err
	}

	fileBytes, err := os.ReadFile(statusFilePath)
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s Status

	if err := json.Unmarshal(fileBytes, &s); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, s.String())

	return err
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

func desktopNotify(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// postSession sends the completion notification and runs the session
// command off the UI goroutine.
func (t *Timer) postSession(c engine.Completion) tea.Cmd {
	notify := t.Opts.Notifications.Enabled
	sessionCmd := t.Opts.Settings.Cmd

	return func() tea.Msg {
		if notify {
			title := c.Pattern.Name + " complete"
			msg := fmt.Sprintf(
				"%d cycles in %s",
				c.Cycles,
				timeutil.Human(c.Elapsed),
			)

			if err := t.notify(title, msg); err != nil {
				slog.Error("unable to display notification", slog.Any("error", err))
			}
		}

		if err := runSessionCmd(sessionCmd); err != nil {
			slog.Error("session command failed", slog.Any("error", err))
		}

		return nil
	}
}

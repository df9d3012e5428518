package stats

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/internal/ui"
	"github.com/ayoisaiah/breathe/store"
)

func printSessionsTable(w io.Writer, sessions []models.Session) error {
	tableBody := make([][]string, 0, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		row := []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format("January 02, 2006 03:04 PM"),
			sess.PatternName,
			sess.Ratio,
			fmt.Sprintf("%d/%d", sess.CyclesCompleted, sess.Cycles),
			timeutil.Clock(sess.Elapsed),
			ui.Status(sess.Completed),
		}

		tableBody = append(tableBody, row)
	}

	return ui.PrintTable(
		[]string{"#", "START DATE", "PATTERN", "RATIO", "CYCLES", "DURATION", "STATUS"},
		tableBody,
		w,
	)
}

// List prints out a table of all the sessions that
// were started within the specified time range.
func List(db store.DB, opts *Opts) error {
	sessions, err := db.GetSessions(opts.StartTime, opts.EndTime)
	if err != nil {
		return err
	}

	if opts.JSON {
		if sessions == nil {
			sessions = []models.Session{}
		}

		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(sessions)
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	return printSessionsTable(opts.Stdout, sessions)
}

package stats

import (
	"bufio"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/store"
)

// Delete attempts to delete all sessions that fall in the specified time range.
// It requests for confirmation before proceeding with the permanent removal of
// the sessions from the database.
func Delete(db store.DB, opts *Opts) error {
	sessions, err := db.GetSessions(opts.StartTime, opts.EndTime)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	if err := printSessionsTable(opts.Stdout, sessions); err != nil {
		return err
	}

	warning := pterm.Warning.Sprint(
		"The above sessions will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(opts.Stdout, warning)

	reader := bufio.NewReader(opts.Stdin)

	_, _ = reader.ReadString('\n')

	return db.DeleteSessions(sessions)
}

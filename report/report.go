// Package report prints user-facing messages for the command-line
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/internal/osutil"
)

func Success(msg string, args ...any) {
	pterm.Success.Printfln(msg, args...)
}

func Warn(err error) {
	pterm.Warning.Println(err)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(osutil.ExitError)
}

// Package osutil holds platform-specific constants and helpers
package osutil

import (
	"os"
	"runtime"
)

const Windows = "windows"

const ExitError = 1

const DirPermission = 0o755

// Editor returns the user's preferred text editor, falling back to a
// platform default when neither VISUAL nor EDITOR is set.
func Editor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}

	if runtime.GOOS == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}

package timer

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errNoPatterns = &apperr.Error{
		Message: "no breathing patterns to choose from",
	}

	errUnknownPattern = &apperr.Error{
		Message: "unknown pattern %q: run 'breathe patterns' to see what is available",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse session command",
	}

	errWriteStatus = &apperr.Error{
		Message: "unable to write status file",
	}
)

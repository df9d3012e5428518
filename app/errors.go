package app

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errInvalidStartDate = &apperr.Error{
		Message: "unable to parse start date %q",
	}

	errInvalidEndDate = &apperr.Error{
		Message: "unable to parse end date %q",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the end date must not be earlier than the start date",
	}

	errMissingPatternID = &apperr.Error{
		Message: "a pattern ID is required: run 'breathe patterns' to list them",
	}

	errUnknownPattern = &apperr.Error{
		Message: "unknown pattern %q",
	}

	errBuiltinPreset = &apperr.Error{
		Message: "%q is a built-in pattern and cannot be changed",
	}

	errPresetDuration = &apperr.Error{
		Message: "invalid %s duration",
	}

	errMissingFile = &apperr.Error{
		Message: "a file path is required",
	}

	errReadPresets = &apperr.Error{
		Message: "unable to read presets from %s",
	}

	errWritePresets = &apperr.Error{
		Message: "unable to write presets to %s",
	}
)

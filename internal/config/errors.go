package config

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidCycles = &apperr.Error{
		Message: "cycles must be between %d and %d",
	}

	errInvalidVolume = &apperr.Error{
		Message: "%s volume must be between 0 and 1, got %v",
	}

	errUnknownSound = &apperr.Error{
		Message: "%s sound file not found: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errEmptyPattern = &apperr.Error{
		Message: "session pattern cannot be empty",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration",
	}

	errInvalidCustomPattern = &apperr.Error{
		Message: "invalid custom pattern",
	}
)

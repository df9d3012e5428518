package sound

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "unsupported sound format: %s",
	}

	errLoadCue = &apperr.Error{
		Message: "unable to load %s sound",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise audio output",
	}
)

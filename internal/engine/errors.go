package engine

import "github.com/ayoisaiah/breathe/internal/apperr"

// ErrInvalidConfig is returned when a session config could never make
// progress.
var ErrInvalidConfig = &apperr.Error{
	Message: "invalid session configuration",
}

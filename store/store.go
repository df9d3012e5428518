package store

import (
	"time"

	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/pattern"
)

// DB is the database storage interface.
type DB interface {
	// SavePreset stores a user pattern, overwriting any preset with the same
	// ID
	SavePreset(p *pattern.Pattern) error
	// DeletePreset removes a user pattern and its favourite mark
	DeletePreset(id string) error
	// GetPresets returns all user patterns
	GetPresets() ([]pattern.Pattern, error)
	// ToggleFavorite marks or unmarks a pattern as a favourite and reports
	// whether it is now a favourite
	ToggleFavorite(id string) (bool, error)
	// GetFavorites returns the IDs of favourite patterns
	GetFavorites() ([]string, error)
	// UpdateSession creates or overwrites a history record keyed by its
	// start time
	UpdateSession(sess *models.Session) error
	// GetSessions returns history records that started within the given
	// bounds
	GetSessions(startTime, endTime time.Time) ([]models.Session, error)
	// DeleteSessions deletes one or more history records
	DeleteSessions(sessions []models.Session) error
	// SetLastPattern remembers the most recently used pattern
	SetLastPattern(id string) error
	// LastPattern returns the most recently used pattern or an empty string
	LastPattern() (string, error)
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}

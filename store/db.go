// Package store connects to the data store and manages presets, favourites,
// and session history
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/pattern"
	"github.com/ayoisaiah/breathe/internal/timeutil"
)

const (
	presetBucket   = "presets"
	favoriteBucket = "favorites"
	sessionBucket  = "sessions"
	metaBucket     = "meta"

	keyLastPattern   = "last_pattern"
	keySchemaVersion = "schema_version"
)

var (
	errBreatheRunning = errors.New(
		"is Breathe already running? Only one instance can be active at a time",
	)
	errPresetNotFound = errors.New("preset not found")
	errInvalidPreset  = errors.New("invalid preset")
)

// ErrBreatheRunning is returned when another process holds the database lock.
var ErrBreatheRunning = errBreatheRunning

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

func (c *Client) SavePreset(p *pattern.Pattern) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidPreset, err)
	}

	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(presetBucket)).Put([]byte(p.ID), value)
	})
}

func (c *Client) DeletePreset(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(presetBucket))
		if b.Get([]byte(id)) == nil {
			return fmt.Errorf("%w: %s", errPresetNotFound, id)
		}

		if err := b.Delete([]byte(id)); err != nil {
			return err
		}

		return tx.Bucket([]byte(favoriteBucket)).Delete([]byte(id))
	})
}

func (c *Client) GetPresets() ([]pattern.Pattern, error) {
	var presets []pattern.Pattern

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(presetBucket)).ForEach(func(_, v []byte) error {
			var p pattern.Pattern

			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}

			presets = append(presets, p)

			return nil
		})
	})

	return presets, err
}

func (c *Client) ToggleFavorite(id string) (bool, error) {
	var fav bool

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(favoriteBucket))

		if b.Get([]byte(id)) != nil {
			return b.Delete([]byte(id))
		}

		fav = true

		return b.Put([]byte(id), []byte{})
	})

	return fav, err
}

func (c *Client) GetFavorites() ([]string, error) {
	var ids []string

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(favoriteBucket)).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})

	return ids, err
}

func (c *Client) UpdateSession(sess *models.Session) error {
	key := timeutil.ToKey(sess.StartTime)

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put(key, value)
	})
}

func (c *Client) DeleteSessions(sessions []models.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range sessions {
			key := timeutil.ToKey(sessions[i].StartTime)

			err := tx.Bucket([]byte(sessionBucket)).Delete(key)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
) ([]models.Session, error) {
	var s []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()
		minKey := timeutil.ToKey(startTime)
		maxKey := timeutil.ToKey(endTime)

		for k, v := cur.Seek(minKey); k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			var sess models.Session

			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}

			s = append(s, sess)
		}

		return nil
	})

	return s, err
}

func (c *Client) SetLastPattern(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(metaBucket)).Put([]byte(keyLastPattern), []byte(id))
	})
}

func (c *Client) LastPattern() (string, error) {
	var id string

	err := c.View(func(tx *bolt.Tx) error {
		id = string(tx.Bucket([]byte(metaBucket)).Get([]byte(keyLastPattern)))
		return nil
	})

	return id, err
}

func (c *Client) Open() error {
	if c.DB != nil {
		return nil
	}

	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

func (c *Client) Close() error {
	if c.DB == nil {
		return nil
	}

	err := c.DB.Close()
	c.DB = nil

	return err
}

// IsFavorite reports whether id is in favs.
func IsFavorite(favs []string, id string) bool {
	return slices.Contains(favs, id)
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrDatabaseOpen) ||
			errors.Is(err, berrors.ErrTimeout) {
			return nil, errBreatheRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{
		DB:   db,
		path: dbPath,
	}

	if err := db.Update(c.migrate); err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

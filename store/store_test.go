package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/pattern"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "breathe.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func testPreset(name string) *pattern.Pattern {
	return &pattern.Pattern{
		ID:       pattern.Slug(name),
		Name:     name,
		Category: "custom",
		Inhale:   3 * time.Second,
		Hold1:    time.Second,
		Exhale:   5 * time.Second,
	}
}

func TestPresets(t *testing.T) {
	c := newTestClient(t)

	calm := testPreset("Evening Calm")
	focus := testPreset("Desk Focus")

	require.NoError(t, c.SavePreset(calm))
	require.NoError(t, c.SavePreset(focus))

	got, err := c.GetPresets()
	require.NoError(t, err)

	// keys are iterated in byte order
	want := []pattern.Pattern{*focus, *calm}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetPresets() mismatch (-want +got):\n%s", diff)
	}

	calm.Exhale = 7 * time.Second
	require.NoError(t, c.SavePreset(calm))

	got, err = c.GetPresets()
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 7*time.Second, got[1].Exhale)

	require.NoError(t, c.DeletePreset(focus.ID))

	got, err = c.GetPresets()
	require.NoError(t, err)
	assert.Equal(t, []pattern.Pattern{*calm}, got)
}

func TestSaveInvalidPreset(t *testing.T) {
	c := newTestClient(t)

	p := testPreset("Broken")
	p.Inhale = 0
	p.Exhale = 0

	err := c.SavePreset(p)
	assert.True(t, errors.Is(err, errInvalidPreset))
}

func TestDeleteMissingPreset(t *testing.T) {
	c := newTestClient(t)

	err := c.DeletePreset("custom-nope")
	assert.True(t, errors.Is(err, errPresetNotFound))
}

func TestFavorites(t *testing.T) {
	c := newTestClient(t)

	fav, err := c.ToggleFavorite("box")
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = c.ToggleFavorite("478")
	require.NoError(t, err)
	assert.True(t, fav)

	favs, err := c.GetFavorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"478", "box"}, favs)
	assert.True(t, IsFavorite(favs, "box"))

	fav, err = c.ToggleFavorite("box")
	require.NoError(t, err)
	assert.False(t, fav)

	favs, err = c.GetFavorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"478"}, favs)
}

func TestDeletePresetClearsFavorite(t *testing.T) {
	c := newTestClient(t)

	p := testPreset("Morning")
	require.NoError(t, c.SavePreset(p))

	_, err := c.ToggleFavorite(p.ID)
	require.NoError(t, err)

	require.NoError(t, c.DeletePreset(p.ID))

	favs, err := c.GetFavorites()
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestSessions(t *testing.T) {
	c := newTestClient(t)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	sessions := []models.Session{
		{
			StartTime:       base,
			EndTime:         base.Add(80 * time.Second),
			PatternID:       "box",
			PatternName:     "Box Breathing",
			Cycles:          5,
			CyclesCompleted: 5,
			Elapsed:         80 * time.Second,
			Completed:       true,
		},
		{
			StartTime:       base.Add(24 * time.Hour),
			EndTime:         base.Add(24*time.Hour + 30*time.Second),
			PatternID:       "478",
			PatternName:     "4-7-8 Breathing",
			Cycles:          4,
			CyclesCompleted: 1,
			Elapsed:         30 * time.Second,
		},
		{
			StartTime: base.Add(72 * time.Hour),
			EndTime:   base.Add(72*time.Hour + time.Minute),
			PatternID: "coherent",
			Cycles:    6,
			Elapsed:   time.Minute,
			Completed: true,
		},
	}

	for i := range sessions {
		require.NoError(t, c.UpdateSession(&sessions[i]))
	}

	got, err := c.GetSessions(base, base.Add(48*time.Hour))
	require.NoError(t, err)

	if diff := cmp.Diff(sessions[:2], got); diff != "" {
		t.Fatalf("GetSessions() mismatch (-want +got):\n%s", diff)
	}

	// overwriting by start time updates in place
	sessions[1].CyclesCompleted = 2
	require.NoError(t, c.UpdateSession(&sessions[1]))

	got, err = c.GetSessions(time.Time{}, base.Add(100*time.Hour))
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, 2, got[1].CyclesCompleted)

	require.NoError(t, c.DeleteSessions(sessions[:1]))

	got, err = c.GetSessions(time.Time{}, base.Add(100*time.Hour))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLastPattern(t *testing.T) {
	c := newTestClient(t)

	id, err := c.LastPattern()
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, c.SetLastPattern("wim-hof"))

	id, err = c.LastPattern()
	require.NoError(t, err)
	assert.Equal(t, "wim-hof", id)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breathe.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	require.NoError(t, c.SetLastPattern("478"))
	require.NoError(t, c.Close())
	require.NoError(t, c.Open())

	defer c.Close()

	id, err := c.LastPattern()
	require.NoError(t, err)
	assert.Equal(t, "478", id)
}

func TestDatabaseLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breathe.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	assert.ErrorIs(t, err, ErrBreatheRunning)
}

func TestMigrateSessionKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breathe.db")

	start := time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC)
	value, err := json.Marshal(models.Session{StartTime: start, PatternID: "box"})
	require.NoError(t, err)

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		return b.Put([]byte(start.Format(time.RFC3339)), value)
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	got, err := c.GetSessions(start, start)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "box", got[0].PatternID)
}

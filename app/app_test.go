package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/pattern"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/store"
)

func newTestStore(t *testing.T) *store.Client {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "breathe.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func sameDay(t *testing.T, want, got time.Time) {
	t.Helper()

	assert.Equal(t, want.Format(time.DateOnly), got.Format(time.DateOnly))
}

func TestParseWindowDefault(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.Local)

	start, end, err := parseWindow("", "", now)
	require.NoError(t, err)

	assert.Equal(t, timeutil.RoundToStart(now.AddDate(0, 0, -6)), start)
	assert.Equal(t, now, end)
}

func TestParseWindow(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.Local)

	start, end, err := parseWindow("2025-01-02", "2025-01-05", now)
	require.NoError(t, err)

	sameDay(t, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.Local), start)
	sameDay(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.Local), end)

	start, end, err = parseWindow("3 days ago", "", now)
	require.NoError(t, err)

	sameDay(t, now.AddDate(0, 0, -3), start)
	assert.Equal(t, now, end)
}

func TestParseWindowErrors(t *testing.T) {
	now := time.Now()

	_, _, err := parseWindow("flibbertigibbet", "", now)
	assert.True(t, errors.Is(err, errInvalidStartDate))

	_, _, err = parseWindow("", "flibbertigibbet", now)
	assert.True(t, errors.Is(err, errInvalidEndDate))

	_, _, err = parseWindow("2025-01-05", "2025-01-02", now)
	assert.True(t, errors.Is(err, errInvalidDateRange))
}

func TestPresetExportImport(t *testing.T) {
	src := newTestStore(t)

	presets := []*pattern.Pattern{
		{Name: "Evening Wind Down", Inhale: 4 * time.Second, Exhale: 8 * time.Second},
		{
			Name:     "Quick Reset",
			Category: "focus",
			Inhale:   5500 * time.Millisecond,
			Hold1:    2 * time.Second,
			Exhale:   5500 * time.Millisecond,
			Hold2:    time.Second,
		},
	}

	for _, p := range presets {
		require.NoError(t, savePreset(src, p))
	}

	path := filepath.Join(t.TempDir(), "presets.yml")

	n, err := exportPresets(src, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "inhale: 5.5s")
	assert.Contains(t, string(b), "id: custom-quick-reset")

	dst := newTestStore(t)

	n, err = importPresets(dst, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	want, err := src.GetPresets()
	require.NoError(t, err)

	got, err := dst.GetPresets()
	require.NoError(t, err)

	pattern.SortByName(want)
	pattern.SortByName(got)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("imported presets mismatch (-want +got):\n%s", diff)
	}
}

func TestImportInvalidPresets(t *testing.T) {
	db := newTestStore(t)
	path := filepath.Join(t.TempDir(), "presets.yml")

	data := `presets:
  - name: Fine
    inhale: 4s
    exhale: 4s
  - name: Broken
    inhale: 0s
    exhale: 0s
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	_, err := importPresets(db, path)
	require.Error(t, err)

	got, err := db.GetPresets()
	require.NoError(t, err)
	assert.Empty(t, got)

	builtin := `presets:
  - id: box
    name: My Box
    inhale: 4s
    exhale: 4s
`
	require.NoError(t, os.WriteFile(path, []byte(builtin), 0o600))

	_, err = importPresets(db, path)
	assert.True(t, errors.Is(err, errBuiltinPreset))

	_, err = importPresets(db, "")
	assert.True(t, errors.Is(err, errMissingFile))
}

func TestSaveBuiltinPreset(t *testing.T) {
	db := newTestStore(t)

	err := savePreset(db, &pattern.Pattern{
		ID:     "box",
		Name:   "Box",
		Inhale: time.Second,
		Exhale: time.Second,
	})
	assert.True(t, errors.Is(err, errBuiltinPreset))
}

func TestResolveLastPattern(t *testing.T) {
	db := newTestStore(t)

	patterns, err := catalog(db)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Session.Pattern = lastPattern

	resolveLastPattern(db, cfg, patterns)
	assert.Equal(t, pattern.DefaultID, cfg.Session.Pattern)

	require.NoError(t, db.SetLastPattern("478"))

	cfg.Session.Pattern = lastPattern
	resolveLastPattern(db, cfg, patterns)
	assert.Equal(t, "478", cfg.Session.Pattern)

	require.NoError(t, db.SetLastPattern("custom-deleted"))

	cfg.Session.Pattern = lastPattern
	resolveLastPattern(db, cfg, patterns)
	assert.Equal(t, pattern.DefaultID, cfg.Session.Pattern)

	cfg.Session.Pattern = "coherent"
	resolveLastPattern(db, cfg, patterns)
	assert.Equal(t, "coherent", cfg.Session.Pattern)
}

func TestCatalog(t *testing.T) {
	db := newTestStore(t)

	require.NoError(t, savePreset(db, &pattern.Pattern{
		Name:   "Zen",
		Inhale: time.Second,
		Exhale: time.Second,
	}))

	patterns, err := catalog(db)
	require.NoError(t, err)

	assert.Len(t, patterns, len(pattern.Builtin())+1)
	assert.Equal(t, "custom-zen", patterns[len(patterns)-1].ID)
}

func TestToggleFavorite(t *testing.T) {
	db := newTestStore(t)

	fav, err := toggleFavorite(db, "box")
	require.NoError(t, err)
	assert.True(t, fav)

	_, err = toggleFavorite(db, "nope")
	assert.True(t, errors.Is(err, errUnknownPattern))

	_, err = toggleFavorite(db, "")
	assert.True(t, errors.Is(err, errMissingPatternID))
}

func TestFilterPatterns(t *testing.T) {
	patterns := pattern.Builtin()

	assert.Nil(t, filterPatterns(patterns, nil, pattern.Query{}, true))

	got := filterPatterns(patterns, []string{"478", "box"}, pattern.Query{}, true)
	require.Len(t, got, 2)

	got = filterPatterns(patterns, nil, pattern.Query{Category: "sleep"}, false)
	require.Len(t, got, 1)
	assert.Equal(t, "478", got[0].ID)
}

func TestWritePatternsJSON(t *testing.T) {
	var buf bytes.Buffer

	patterns := pattern.Builtin()[:2]

	require.NoError(t, writePatterns(&buf, patterns, []string{"478"}, true))

	var got []listedPattern

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "box", got[0].ID)
	assert.Equal(t, "4-4-4-4", got[0].Ratio)
	assert.False(t, got[0].Favorite)
	assert.True(t, got[1].Favorite)
}

func TestWritePatternsTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writePatterns(&buf, pattern.Builtin(), nil, false))

	assert.Contains(t, buf.String(), "Box Breathing")
	assert.Contains(t, buf.String(), "4-7-8-0")
}

package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/breathe/internal/timeutil"
)

func TestClock(t *testing.T) {
	testCases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{4 * time.Second, "00:04"},
		{3200 * time.Millisecond, "00:04"},
		{90 * time.Second, "01:30"},
		{16 * time.Minute, "16:00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, timeutil.Clock(tc.in), tc.in.String())
	}
}

func TestHuman(t *testing.T) {
	assert.Equal(t, "45s", timeutil.Human(45*time.Second))
	assert.Equal(t, "2m 5s", timeutil.Human(125*time.Second))
	assert.Equal(t, "1h 0m 30s", timeutil.Human(time.Hour+30*time.Second))
}

func TestRoundToStartAndEnd(t *testing.T) {
	d := time.Date(2024, 3, 9, 14, 22, 10, 500, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), timeutil.RoundToStart(d))
	assert.Equal(t, time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC), timeutil.RoundToEnd(d))
}

func TestToKeyOrdering(t *testing.T) {
	a := time.Date(2024, 3, 9, 14, 22, 10, 0, time.UTC)
	b := a.Add(time.Second)

	assert.Less(t, string(timeutil.ToKey(a)), string(timeutil.ToKey(b)))
}

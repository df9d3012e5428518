// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const secondsInAMinute = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// Clock renders a duration as MM:SS, rounding partial seconds up so a
// countdown never shows 00:00 while time remains.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int(math.Ceil(d.Seconds()))

	return fmt.Sprintf("%02d:%02d", secs/secondsInAMinute, secs%secondsInAMinute)
}

// Seconds renders a duration as whole seconds with a unit, rounding up.
func Seconds(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	return fmt.Sprintf("%ds", int(math.Ceil(d.Seconds())))
}

// Human renders a duration in hours, minutes, and seconds, omitting the
// leading zero units.
func Human(d time.Duration) string {
	d = d.Round(time.Second)

	h := int(d.Hours())
	m := int(d.Minutes()) % secondsInAMinute
	s := int(d.Seconds()) % secondsInAMinute

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	}

	return fmt.Sprintf("%ds", s)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}

package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{Message: "%s must be positive"}

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt("cycles")

	assert.Equal(t, "cycles must be positive", err.Error())
	assert.Equal(t, "%s must be positive", errTemplate.Message)
	assert.ErrorIs(t, err, errTemplate)
}

func TestWrap(t *testing.T) {
	err := errTemplate.Fmt("inhale").Wrap(io.EOF)

	assert.Equal(t, "inhale must be positive: EOF", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.ErrorIs(t, err, io.EOF)

	other := &Error{Message: "%s must be positive"}
	assert.False(t, errors.Is(err, other))
}

package osutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/breathe/internal/osutil"
)

func TestEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "vim")

	assert.Equal(t, "vim", osutil.Editor())

	t.Setenv("VISUAL", "code --wait")

	assert.Equal(t, "code --wait", osutil.Editor())
}

package ui_test

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/breathe/internal/ui"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	err := ui.PrintTable(
		[]string{"ID", "NAME"},
		[][]string{{"box", "Box Breathing"}, {"478", "4-7-8 Breathing"}},
		&buf,
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Box Breathing")
	assert.Contains(t, out, "4-7-8 Breathing")
}

func TestStatus(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	assert.Equal(t, "completed", ui.Status(true))
	assert.Equal(t, "abandoned", ui.Status(false))
	assert.Empty(t, ui.Favorite(false))
}

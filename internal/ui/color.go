// Package ui holds the pterm helpers shared by breathe's non-interactive
// commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour so that text stays
// readable on a dark terminal background.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Status renders a session outcome.
func Status(completed bool) string {
	if completed {
		return Green("completed")
	}

	return Red("abandoned")
}

// Favorite marks favourite patterns in listings.
func Favorite(fav bool) string {
	if fav {
		return Yellow("★")
	}

	return ""
}

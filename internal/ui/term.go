package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers and dates: bold
	colorHeader = color.New(color.Bold)

	// Chosen slots: green marker
	colorSelected = color.New(color.FgGreen, color.Bold)

	// Sign-up counts: yellow to make them pop
	colorCount = color.New(color.FgYellow)

	// Placeholder cells and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Errors and backend failure codes
	colorError = color.New(color.FgRed, color.Bold)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatSelected formats a chosen slot cell.
func formatSelected(s string) string {
	return colorSelected.Sprint(s)
}

// formatCount formats a sign-up tally.
func formatCount(s string) string {
	return colorCount.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatError formats a failure message.
func formatError(s string) string {
	return colorError.Sprint(s)
}

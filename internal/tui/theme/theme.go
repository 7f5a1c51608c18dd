// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgSelection string `toml:"bg_selection"` // Cursor cell
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Placeholders, secondary text
	Accent      string `toml:"accent"`       // Title, borders, today
	Selected    string `toml:"selected"`     // Chosen slot cells
	SelectedFg  string `toml:"selected_fg"`  // Text on chosen cells
	Warning     string `toml:"warning"`      // Errors, backend failure codes
	Success     string `toml:"success"`      // Load/submit confirmations
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Default returns the theme name matching the terminal background.
func Default() string {
	if termenv.HasDarkBackground() {
		return "mocha"
	}
	return "latte"
}

// Available returns the embedded theme names.
func Available() []string {
	return []string{"mocha", "latte"}
}

// IsAvailable reports whether a theme name can be loaded.
func IsAvailable(name string) bool {
	for _, n := range Available() {
		if n == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// Load loads a theme by name from embedded files. An empty name picks
// by terminal background; unknown names fall back to mocha.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = Default()
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		data, err = embeddedThemes.ReadFile("embedded/mocha.toml")
		if err != nil {
			return nil, fmt.Errorf("loading fallback theme: %w", err)
		}
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	return &t, nil
}

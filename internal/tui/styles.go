// Package tui provides the terminal user interface for shiftwish.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pinyuchen/shiftwish/internal/tui/theme"
)

// Minimum column width for slot cells.
const minCellWidth = 14

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg       lipgloss.Color
	colorFg       lipgloss.Color
	colorFgMuted  lipgloss.Color
	colorAccent   lipgloss.Color
	colorSelected lipgloss.Color
	colorWarning  lipgloss.Color
	colorSuccess  lipgloss.Color

	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	DateStyle    lipgloss.Style
	WeekdayStyle lipgloss.Style

	CellStyle            lipgloss.Style
	CellSelectedStyle    lipgloss.Style
	CellCursorStyle      lipgloss.Style
	CellPlaceholderStyle lipgloss.Style

	LabelStyle      lipgloss.Style
	InputStyle      lipgloss.Style
	InputFocusStyle lipgloss.Style

	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	HelpStyle    lipgloss.Style
	BorderStyle  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:       theme.Color(t.Bg),
		colorFg:       theme.Color(t.Fg),
		colorFgMuted:  theme.Color(t.FgMuted),
		colorAccent:   theme.Color(t.Accent),
		colorSelected: theme.Color(t.Selected),
		colorWarning:  theme.Color(t.Warning),
		colorSuccess:  theme.Color(t.Success),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.HeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true).
		Align(lipgloss.Center)

	s.DateStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true)

	s.WeekdayStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.CellStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.CellSelectedStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.SelectedFg)).
		Background(s.colorSelected).
		Bold(true)

	s.CellCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(theme.Color(t.BgSelection)).
		Bold(true)

	s.CellPlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Faint(true)

	s.LabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.InputStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.InputFocusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.SuccessStyle = lipgloss.NewStyle().
		Foreground(s.colorSuccess)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	return s
}

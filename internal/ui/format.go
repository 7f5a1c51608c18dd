package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/pinyuchen/shiftwish/internal/slot"
)

// Column layout for the one-shot text grid.
const (
	dateColWidth = 10
	minSlotWidth = 16
)

// padCell pads or trims styled or CJK text to a display width.
func padCell(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}

// slotColWidth divides the terminal width across the shift columns.
func slotColWidth(columns int) int {
	if columns == 0 {
		return minSlotWidth
	}
	w := (termWidth() - dateColWidth) / columns
	if w < minSlotWidth {
		return minSlotWidth
	}
	return w
}

// PrintGrid writes the weekly schedule as plain text: a header with the
// column names, then one line per day. Chosen slots get a checkmark.
func PrintGrid(rows []slot.Row, columns []string, selected func(id string) bool) {
	width := slotColWidth(len(columns))

	header := padCell("", dateColWidth)
	for _, col := range columns {
		header += padCell(formatHeader(col), width)
	}
	fmt.Println(header)

	for _, row := range rows {
		date := row.Date.Display
		if row.Date.Weekday != "" {
			date += " " + row.Date.Weekday
		}
		line := padCell(formatHeader(date), dateColWidth)

		for _, cell := range row.Cells {
			line += padCell(renderCell(cell, selected), width)
		}
		fmt.Println(line)
	}
}

// renderCell renders one slot as "✓ 8:00–11:00 (2) 王小明、林小華".
func renderCell(c slot.Cell, selected func(id string) bool) string {
	if c.Placeholder {
		return formatMuted("—")
	}

	var b strings.Builder
	if selected != nil && selected(c.Slot.ID) {
		b.WriteString(formatSelected("✓ "))
	}
	b.WriteString(c.Slot.TimeLabel)
	b.WriteString(" ")
	b.WriteString(formatCount(fmt.Sprintf("(%d)", c.Slot.Count)))
	if short := slot.ShortNames(c.Slot.Names, slot.DefaultMaxNames, slot.DefaultMaxNameLen); short != "" {
		b.WriteString(" " + formatMuted(short))
	}
	return b.String()
}

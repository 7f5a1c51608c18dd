package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/pinyuchen/shiftwish/internal/slot"
)

// truncateCell trims styled or CJK text to a display width, appending
// an ellipsis when anything was cut.
func truncateCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// cellText renders the two-line content of a grid cell: the time label,
// then the sign-up count with a shortened name list.
func cellText(c slot.Cell, selected bool, width int) string {
	if c.Placeholder {
		return "—"
	}

	var b strings.Builder
	if selected {
		b.WriteString("✓ ")
	}
	b.WriteString(c.Slot.TimeLabel)

	tally := fmt.Sprintf("目前 %d 人", c.Slot.Count)
	if short := slot.ShortNames(c.Slot.Names, slot.DefaultMaxNames, slot.DefaultMaxNameLen); short != "" {
		tally += "｜" + short
	}

	return truncateCell(b.String(), width) + "\n" + truncateCell(tally, width)
}

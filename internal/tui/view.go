package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.TitleStyle.Render("排班意願調查"))
	if lib := m.sess.Library(); lib != "" {
		b.WriteString("  " + m.styles.LabelStyle.Render(lib))
	}
	b.WriteString("\n\n")

	switch m.mode {
	case ModeForm:
		b.WriteString(m.viewForm())
	case ModeGrid:
		b.WriteString(m.viewGrid())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return b.String()
}

// viewForm renders the identity form.
func (m Model) viewForm() string {
	labels := [fieldCount]string{"學號 / ID", "姓名", "備註"}

	var b strings.Builder
	for i := range m.inputs {
		label := m.styles.LabelStyle.Render(labels[i])
		if i == m.focus {
			label = m.styles.InputFocusStyle.Render(labels[i])
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", label, m.inputs[i].View()))
	}
	return b.String()
}

// viewGrid renders the weekly schedule as a bordered table: one row per
// day, one column per shift under the active column policy.
func (m Model) viewGrid() string {
	if len(m.rows) == 0 {
		return m.styles.LabelStyle.Render("目前沒有可選的時段。")
	}

	headers := append([]string{"日期", "週"}, m.policy.Columns()...)
	headerStyles := make([]lipgloss.Style, len(headers))
	for i := range headerStyles {
		headerStyles[i] = m.styles.HeaderStyle
	}

	cellWidth := m.cellWidth(len(headers))

	rows := make([][]string, 0, len(m.rows))
	cellStyles := make([][]lipgloss.Style, 0, len(m.rows))
	for ri, row := range m.rows {
		cols := make([]string, 0, len(headers))
		styles := make([]lipgloss.Style, 0, len(headers))

		cols = append(cols, row.Date.Display, row.Date.Weekday)
		styles = append(styles, m.styles.DateStyle, m.styles.WeekdayStyle)

		for ci, cell := range row.Cells {
			selected := !cell.Placeholder && m.sess.Selected(cell.Slot.ID)
			cols = append(cols, cellText(cell, selected, cellWidth))
			styles = append(styles, m.cellStyle(ri, ci, cell.Placeholder, selected))
		}

		rows = append(rows, cols)
		cellStyles = append(cellStyles, styles)
	}

	t := table.New().
		Headers(headers...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.BorderStyle).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col >= 0 && col < len(headerStyles) {
					return headerStyles[col]
				}
				return lipgloss.NewStyle()
			}
			if row < 0 || row >= len(cellStyles) || col < 0 || col >= len(cellStyles[row]) {
				return lipgloss.NewStyle()
			}
			return cellStyles[row][col]
		})

	grid := t.Render()

	summary := fmt.Sprintf("已勾選 %d 個時段", m.sess.SelectedCount())
	return grid + "\n" + m.styles.LabelStyle.Render(summary)
}

// cellStyle picks the style for one slot cell. The cursor wins over
// selection so it stays visible while moving across chosen slots.
func (m Model) cellStyle(row, col int, placeholder, selected bool) lipgloss.Style {
	if m.cursor.Row == row && m.cursor.Col == col {
		return m.styles.CellCursorStyle
	}
	if placeholder {
		return m.styles.CellPlaceholderStyle
	}
	if selected {
		return m.styles.CellSelectedStyle
	}
	return m.styles.CellStyle
}

// cellWidth divides the terminal width across the slot columns.
func (m Model) cellWidth(columns int) int {
	if columns <= 2 || m.width == 0 {
		return minCellWidth
	}
	// leave room for the date and weekday columns plus borders
	w := (m.width - 14 - columns) / (columns - 2)
	if w < minCellWidth {
		return minCellWidth
	}
	return w
}

// viewStatus renders the transient status line.
func (m Model) viewStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	switch m.statusStyle {
	case statusError:
		return m.styles.ErrorStyle.Render(m.statusMsg)
	case statusSuccess:
		return m.styles.SuccessStyle.Render(m.statusMsg)
	default:
		return m.styles.StatusStyle.Render(m.statusMsg)
	}
}

// viewHelp renders the key hints for the current mode.
func (m Model) viewHelp() string {
	var help string
	switch m.mode {
	case ModeForm:
		help = "tab 切換欄位 · enter 載入班表 · ctrl+c 離開"
	case ModeGrid:
		help = "↑↓←→/hjkl 移動 · space 勾選 · s 送出 · c 清空 · r 重新載入 · y 複製名單 · i 修改資料 · q 離開"
	}
	return m.styles.HelpStyle.Render(help)
}

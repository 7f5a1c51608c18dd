package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinyuchen/shiftwish/internal/tui/commands"
)

// handleKeyMsg routes key presses by mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global bindings work in every mode.
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.mode {
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeGrid:
		return m.handleGridKeys(msg)
	}
	return m, nil
}

// handleFormKeys drives the identity form.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil

	case "enter":
		if m.pending {
			return m, nil
		}
		m.syncProfile()
		if m.sess.Profile().StaffID == "" {
			m.setStatus("請先輸入學號 / ID 碼。", statusError)
			return m, m.clearStatusLater()
		}
		m.pending = true
		m.setStatus("載入中…", statusNeutral)
		return m, commands.LoadState(m.sess)

	case "esc":
		// Back to the grid if a schedule was already loaded.
		if m.sess.Loaded() {
			m.syncProfile()
			LogModeChange(ModeForm, ModeGrid, "esc")
			m.mode = ModeGrid
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleGridKeys drives grid navigation and slot toggling.
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1, 0)
		return m, nil

	case "down", "j":
		m.moveCursor(1, 0)
		return m, nil

	case "left", "h":
		m.moveCursor(0, -1)
		return m, nil

	case "right", "l":
		m.moveCursor(0, 1)
		return m, nil

	case " ", "enter":
		cell := m.cellAt(m.cursor)
		if cell == nil || cell.Placeholder {
			return m, nil
		}
		selected := m.sess.Toggle(cell.Slot.ID)
		LogEvent("toggle", map[string]any{"slot_id": cell.Slot.ID, "selected": selected})
		return m, nil

	case "c":
		m.sess.Clear()
		m.setStatus("已清空所有勾選。", statusNeutral)
		return m, m.clearStatusLater()

	case "s":
		if m.pending {
			return m, nil
		}
		sub, err := m.sess.BuildSubmission()
		if err != nil {
			m.setStatus(err.Error(), statusError)
			return m, m.clearStatusLater()
		}
		m.pending = true
		m.setStatus("送出中…", statusNeutral)
		return m, commands.Submit(m.sess, sub)

	case "r":
		if m.pending {
			return m, nil
		}
		m.pending = true
		m.setStatus("重新載入中…", statusNeutral)
		return m, commands.LoadState(m.sess)

	case "y":
		cell := m.cellAt(m.cursor)
		if cell == nil || cell.Placeholder || cell.Slot.Names == "" {
			return m, nil
		}
		if err := clipboard.WriteAll(cell.Slot.Names); err != nil {
			m.setStatus("無法複製到剪貼簿。", statusError)
		} else {
			m.setStatus(fmt.Sprintf("已複製 %s 的完整名單。", cell.Slot.TimeLabel), statusNeutral)
		}
		return m, m.clearStatusLater()

	case "i", "esc":
		LogModeChange(ModeGrid, ModeForm, msg.String())
		m.mode = ModeForm
		m.focus = fieldStaffID
		m.refocusInputs()
		return m, textinput.Blink
	}

	return m, nil
}

// moveFocus advances the focused form field, wrapping at the ends.
func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
}

// refocusInputs blurs everything and focuses the current field.
func (m *Model) refocusInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
}

// moveCursor clamps movement to the grid bounds.
func (m *Model) moveCursor(dRow, dCol int) {
	if len(m.rows) == 0 {
		return
	}
	row := m.cursor.Row + dRow
	if row < 0 {
		row = 0
	}
	if row >= len(m.rows) {
		row = len(m.rows) - 1
	}
	cols := len(m.rows[row].Cells)
	col := m.cursor.Col + dCol
	if col < 0 {
		col = 0
	}
	if col >= cols {
		col = cols - 1
	}
	m.cursor = Position{Row: row, Col: col}
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinyuchen/shiftwish/internal/api"
	"github.com/pinyuchen/shiftwish/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.StateLoadedMsg:
		m.pending = false
		m.sess.Apply(context.Background(), msg.State)
		m.rows = m.sess.Rows(m.policy)
		m.pullProfile()
		m.mode = ModeGrid
		m.cursor = Position{}
		m.setStatus("載入完成，勾選 / 取消時段後按 s 送出最新意願。", statusSuccess)
		LogEvent("state_loaded", map[string]any{
			"slots":    len(msg.State.Slots),
			"selected": len(msg.State.SelectedSlots),
		})
		return m, m.clearStatusLater()

	case commands.SubmittedMsg:
		m.pending = false
		m.setStatus(fmt.Sprintf("已送出 %d 個時段！系統會在數分鐘內更新統計與人數顯示。", msg.Count), statusSuccess)
		LogEvent("submitted", map[string]any{"count": msg.Count})
		return m, m.clearStatusLater()

	case commands.ErrMsg:
		m.pending = false
		m.setStatus(statusForError(msg.Err), statusError)
		LogEvent("error", map[string]any{"error": msg.Err.Error()})
		return m, m.clearStatusLater()

	case commands.StatusMsg:
		m.setStatus(msg.Msg, statusNeutral)
		return m, m.clearStatusLater()

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Forward everything else to the focused input while in form mode.
	if m.mode == ModeForm {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) clearStatusLater() tea.Cmd {
	return tea.Tick(8*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// statusForError renders a failure the way the survey page did: backend
// codes verbatim, transport noise as a generic retry-later message.
func statusForError(err error) string {
	var backendErr *api.BackendError
	if errors.As(err, &backendErr) {
		code := backendErr.Code
		if code == "" {
			code = "UNKNOWN"
		}
		return "讀取 / 送出失敗：" + code
	}
	return "發生錯誤，請稍後再試。"
}

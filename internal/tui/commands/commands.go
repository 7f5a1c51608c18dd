// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinyuchen/shiftwish/internal/api"
	"github.com/pinyuchen/shiftwish/internal/session"
)

// StateLoadedMsg is sent when a state fetch completes. The model applies
// it to the session on the UI loop.
type StateLoadedMsg struct {
	State *api.StateResponse
}

// SubmittedMsg is sent when a submission is accepted by the backend.
type SubmittedMsg struct {
	Count int // slots transmitted
}

// ErrMsg is sent when a load or submit fails.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadState fetches the schedule and the staff member's recorded
// selections in the background.
func LoadState(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		state, err := sess.Fetch(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return StateLoadedMsg{State: state}
	}
}

// Submit delivers a previously built payload in the background.
func Submit(sess *session.Session, sub api.Submission) tea.Cmd {
	return func() tea.Msg {
		if err := sess.Deliver(context.Background(), sub); err != nil {
			return ErrMsg{Err: err}
		}
		return SubmittedMsg{Count: len(sub.Slots)}
	}
}

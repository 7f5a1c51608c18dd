package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinyuchen/shiftwish/internal/api"
	"github.com/pinyuchen/shiftwish/internal/config"
	"github.com/pinyuchen/shiftwish/internal/session"
	"github.com/pinyuchen/shiftwish/internal/slot"
	"github.com/pinyuchen/shiftwish/internal/tui/commands"
)

type fakeBackend struct {
	state    *api.StateResponse
	stateErr error
	library  string
}

func (f *fakeBackend) State(ctx context.Context, staffID string) (*api.StateResponse, error) {
	if f.stateErr != nil {
		return nil, f.stateErr
	}
	return f.state, nil
}

func (f *fakeBackend) Submit(ctx context.Context, sub api.Submission) error {
	return nil
}

func (f *fakeBackend) Library() string {
	return f.library
}

func testState() *api.StateResponse {
	return &api.StateResponse{
		OK: true,
		Slots: []slot.Slot{
			{ID: "2025-02-03_1", TimeLabel: "8:00–11:00", Count: 2, Names: "王小明、林小華"},
			{ID: "2025-02-03_2", TimeLabel: "11:00–13:30", Count: 0},
			{ID: "2025-02-04_1", TimeLabel: "8:00–11:00", Count: 1, Names: "陳大頭"},
		},
		SelectedSlots: []string{"2025-02-03_2"},
		Staff:         &api.StaffInfo{Name: "王小明"},
	}
}

func newTestModel(t *testing.T, backend session.Backend) Model {
	t.Helper()
	sess := session.New(backend, nil)
	cfg := config.Default()
	return *New(sess, cfg)
}

func TestNewPrefillsIdentityFromSession(t *testing.T) {
	sess := session.New(&fakeBackend{}, nil)
	sess.SetProfile(session.Profile{StaffID: "s123", Name: "王小明"})

	m := New(sess, config.Default())

	if got := m.inputs[fieldStaffID].Value(); got != "s123" {
		t.Errorf("staff id input = %q, want %q", got, "s123")
	}
	if got := m.inputs[fieldName].Value(); got != "王小明" {
		t.Errorf("name input = %q, want %q", got, "王小明")
	}
	if m.mode != ModeForm {
		t.Errorf("initial mode = %v, want ModeForm", m.mode)
	}
}

func TestFormEnterWithoutStaffIDShowsError(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	if model.pending {
		t.Error("pending = true, want false when staff id is missing")
	}
	if model.statusStyle != statusError {
		t.Errorf("statusStyle = %v, want statusError", model.statusStyle)
	}
	if model.statusMsg == "" {
		t.Error("expected an error status message")
	}
	if cmd == nil {
		t.Error("expected a clear-status tick command")
	}
}

func TestFormEnterWithStaffIDStartsLoad(t *testing.T) {
	m := newTestModel(t, &fakeBackend{state: testState()})
	m.inputs[fieldStaffID].SetValue("s123")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	if !model.pending {
		t.Error("pending = false, want true after enter")
	}
	if cmd == nil {
		t.Fatal("expected a load command")
	}
}

func TestStateLoadedSwitchesToGrid(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	m.sess.SetProfile(session.Profile{StaffID: "s123"})
	m.pending = true

	updated, _ := m.Update(commands.StateLoadedMsg{State: testState()})
	model := updated.(Model)

	if model.mode != ModeGrid {
		t.Fatalf("mode = %v, want ModeGrid", model.mode)
	}
	if model.pending {
		t.Error("pending = true, want false after load")
	}
	if len(model.rows) != 2 {
		t.Errorf("rows = %d, want 2 day rows", len(model.rows))
	}
	if !model.sess.Selected("2025-02-03_2") {
		t.Error("recorded selection was not applied")
	}
	// backend echo fills the empty name field
	if got := model.inputs[fieldName].Value(); got != "王小明" {
		t.Errorf("name input = %q, want %q", got, "王小明")
	}
}

func TestSpaceTogglesSlotUnderCursor(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	m.sess.SetProfile(session.Profile{StaffID: "s123"})
	updated, _ := m.Update(commands.StateLoadedMsg{State: testState()})
	model := updated.(Model)

	cell := model.cellAt(model.cursor)
	if cell == nil || cell.Placeholder {
		t.Fatal("cursor should start on a real slot")
	}
	id := cell.Slot.ID

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = updated.(Model)
	if !model.sess.Selected(id) {
		t.Errorf("slot %q not selected after space", id)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = updated.(Model)
	if model.sess.Selected(id) {
		t.Errorf("slot %q still selected after second space", id)
	}
}

func TestTogglePlaceholderIsNoOp(t *testing.T) {
	// The ordinal policy leaves empty columns as placeholders; the
	// second day only fills _1.
	sess := session.New(&fakeBackend{}, nil)
	sess.SetProfile(session.Profile{StaffID: "s123"})
	cfg := config.Default()
	cfg.Columns.Policy = config.PolicyOrdinal
	cfg.Columns.Count = 3
	m := *New(sess, cfg)

	updated, _ := m.Update(commands.StateLoadedMsg{State: testState()})
	model := updated.(Model)

	model.cursor = Position{Row: 1, Col: 1}
	cell := model.cellAt(model.cursor)
	if cell == nil || !cell.Placeholder {
		t.Fatal("expected a placeholder at row 1 col 1")
	}

	before := model.sess.SelectedCount()
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = updated.(Model)
	if got := model.sess.SelectedCount(); got != before {
		t.Errorf("selected count = %d, want %d (placeholder toggle must be ignored)", got, before)
	}
}

func TestCursorClampsAtGridEdges(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	m.sess.SetProfile(session.Profile{StaffID: "s123"})
	updated, _ := m.Update(commands.StateLoadedMsg{State: testState()})
	model := updated.(Model)

	for i := 0; i < 10; i++ {
		model.moveCursor(-1, -1)
	}
	if model.cursor != (Position{Row: 0, Col: 0}) {
		t.Errorf("cursor = %+v, want origin after moving up-left past the edge", model.cursor)
	}

	for i := 0; i < 20; i++ {
		model.moveCursor(1, 1)
	}
	wantRow := len(model.rows) - 1
	wantCol := len(model.rows[wantRow].Cells) - 1
	if model.cursor.Row != wantRow || model.cursor.Col != wantCol {
		t.Errorf("cursor = %+v, want row %d col %d", model.cursor, wantRow, wantCol)
	}
}

func TestErrMsgRendering(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "backend_code_shown_verbatim",
			err:  &api.BackendError{Code: "STAFF_NOT_FOUND"},
			want: "讀取 / 送出失敗：STAFF_NOT_FOUND",
		},
		{
			name: "backend_without_code",
			err:  &api.BackendError{},
			want: "讀取 / 送出失敗：UNKNOWN",
		},
		{
			name: "transport_error_is_generic",
			err:  errors.New("dial tcp: connection refused"),
			want: "發生錯誤，請稍後再試。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.want {
				t.Errorf("statusForError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubmittedMessageMentionsDelay(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	m.pending = true

	updated, _ := m.Update(commands.SubmittedMsg{Count: 3})
	model := updated.(Model)

	if model.pending {
		t.Error("pending = true, want false after submit completes")
	}
	if model.statusStyle != statusSuccess {
		t.Errorf("statusStyle = %v, want statusSuccess", model.statusStyle)
	}
	if model.statusMsg == "" {
		t.Fatal("expected a success status message")
	}
}

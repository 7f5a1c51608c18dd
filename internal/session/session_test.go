package session

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/pinyuchen/shiftwish/internal/api"
	"github.com/pinyuchen/shiftwish/internal/slot"
	"github.com/pinyuchen/shiftwish/internal/store"
)

// fakeBackend records calls and serves canned responses.
type fakeBackend struct {
	state     *api.StateResponse
	stateErr  error
	submitErr error
	submitted []api.Submission
	library   string
}

func (f *fakeBackend) State(_ context.Context, staffID string) (*api.StateResponse, error) {
	if f.stateErr != nil {
		return nil, f.stateErr
	}
	return f.state, nil
}

func (f *fakeBackend) Submit(_ context.Context, sub api.Submission) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, sub)
	return nil
}

func (f *fakeBackend) Library() string { return f.library }

// memStore is an in-memory store.Store for tests.
type memStore struct {
	identities map[string]store.StaffIdentity
	failing    bool
}

func newMemStore() *memStore {
	return &memStore{identities: make(map[string]store.StaffIdentity)}
}

func (m *memStore) LastIdentity(_ context.Context, library string) (*store.StaffIdentity, error) {
	if m.failing {
		return nil, errors.New("store unavailable")
	}
	id, ok := m.identities[library]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (m *memStore) Remember(_ context.Context, id store.StaffIdentity) error {
	if m.failing {
		return errors.New("store unavailable")
	}
	m.identities[id.Library] = id
	return nil
}

func (m *memStore) Close() error { return nil }

func loadedSession(t *testing.T, backend *fakeBackend) *Session {
	t.Helper()
	s := New(backend, nil)
	s.SetProfile(Profile{StaffID: "s123", Name: "王小明"})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("loading: %v", err)
	}
	return s
}

func TestLoadReplacesState(t *testing.T) {
	backend := &fakeBackend{
		state: &api.StateResponse{
			OK: true,
			Slots: []slot.Slot{
				{ID: "2025-02-01_1", TimeLabel: "8:00–11:00"},
				{ID: "2025-02-01_2", TimeLabel: "11:00–13:30"},
			},
			SelectedSlots: []string{"2025-02-01_1"},
		},
	}
	s := loadedSession(t, backend)

	if !s.Loaded() {
		t.Error("expected session loaded")
	}
	if len(s.Slots()) != 2 {
		t.Errorf("got %d slots, want 2", len(s.Slots()))
	}
	if !s.Selected("2025-02-01_1") {
		t.Error("server selection should be applied")
	}

	// A second load fully overwrites the selection.
	s.Toggle("2025-02-01_2")
	backend.state.SelectedSlots = []string{"2025-02-01_2"}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if s.Selected("2025-02-01_1") || !s.Selected("2025-02-01_2") {
		t.Errorf("got snapshot %v, want only 2025-02-01_2", s.Snapshot())
	}
}

func TestLoadRequiresStaffID(t *testing.T) {
	s := New(&fakeBackend{}, nil)
	if err := s.Load(context.Background()); !errors.Is(err, ErrMissingStaffID) {
		t.Errorf("got %v, want ErrMissingStaffID", err)
	}
}

func TestLoadFillsEmptyProfileFields(t *testing.T) {
	backend := &fakeBackend{
		state: &api.StateResponse{
			OK:    true,
			Staff: &api.StaffInfo{Name: "後端姓名", Note: "後端備註"},
		},
	}

	t.Run("empty fields are filled", func(t *testing.T) {
		s := New(backend, nil)
		s.SetProfile(Profile{StaffID: "s123"})
		if err := s.Load(context.Background()); err != nil {
			t.Fatalf("loading: %v", err)
		}
		p := s.Profile()
		if p.Name != "後端姓名" || p.Note != "後端備註" {
			t.Errorf("got profile %+v, want backend echo applied", p)
		}
	})

	t.Run("user values are never overwritten", func(t *testing.T) {
		s := New(backend, nil)
		s.SetProfile(Profile{StaffID: "s123", Name: "本人輸入"})
		if err := s.Load(context.Background()); err != nil {
			t.Fatalf("loading: %v", err)
		}
		if got := s.Profile().Name; got != "本人輸入" {
			t.Errorf("got name %q, want user value kept", got)
		}
	})
}

func TestLoadRemembersIdentity(t *testing.T) {
	backend := &fakeBackend{
		library: "國璽",
		state:   &api.StateResponse{OK: true},
	}
	st := newMemStore()
	s := New(backend, st)
	s.SetProfile(Profile{StaffID: "s123", Name: "王小明"})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("loading: %v", err)
	}

	saved, _ := st.LastIdentity(context.Background(), "國璽")
	if saved == nil || saved.StaffID != "s123" {
		t.Errorf("got %+v, want remembered staff s123", saved)
	}
}

func TestLoadSurvivesBrokenStore(t *testing.T) {
	backend := &fakeBackend{state: &api.StateResponse{OK: true}}
	st := newMemStore()
	st.failing = true

	s := New(backend, st)
	s.SetProfile(Profile{StaffID: "s123"})
	if err := s.Load(context.Background()); err != nil {
		t.Errorf("load should ignore store failure, got %v", err)
	}
}

func TestRestoreIdentity(t *testing.T) {
	st := newMemStore()
	_ = st.Remember(context.Background(), store.StaffIdentity{
		Library: "",
		StaffID: "remembered",
		Name:    "舊姓名",
	})

	s := New(&fakeBackend{}, st)
	if err := s.RestoreIdentity(context.Background()); err != nil {
		t.Fatalf("restoring: %v", err)
	}
	if got := s.Profile().StaffID; got != "remembered" {
		t.Errorf("got staff id %q, want %q", got, "remembered")
	}

	// Typed values win over remembered ones.
	s2 := New(&fakeBackend{}, st)
	s2.SetProfile(Profile{StaffID: "typed"})
	if err := s2.RestoreIdentity(context.Background()); err != nil {
		t.Fatalf("restoring: %v", err)
	}
	if got := s2.Profile().StaffID; got != "typed" {
		t.Errorf("got staff id %q, want typed value kept", got)
	}
}

func TestSubmitValidation(t *testing.T) {
	backend := &fakeBackend{state: &api.StateResponse{OK: true}}
	s := New(backend, nil)
	s.SetProfile(Profile{StaffID: "s123"}) // no name
	if err := s.Submit(context.Background()); !errors.Is(err, ErrMissingName) {
		t.Errorf("got %v, want ErrMissingName", err)
	}
	if len(backend.submitted) != 0 {
		t.Error("validation failure must not reach the backend")
	}
}

func TestEndToEndToggleAndSubmit(t *testing.T) {
	backend := &fakeBackend{
		state: &api.StateResponse{
			OK:            true,
			Slots:         []slot.Slot{{ID: "2025-02-01_1", TimeLabel: "8:00–11:00"}},
			SelectedSlots: []string{"2025-02-01_1"},
		},
	}
	s := loadedSession(t, backend)

	// The loaded selection must show in the rendered grid.
	rows := s.Rows(slot.DefaultLabelPolicy())
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	cell := rows[0].Cells[0]
	if cell.Placeholder || !s.Selected(cell.Slot.ID) {
		t.Error("loaded slot should render selected")
	}

	// One toggle deselects it, and submit transmits the empty list.
	if s.Toggle("2025-02-01_1") {
		t.Error("toggle of a selected slot should deselect")
	}
	if got := s.Snapshot(); len(got) != 0 {
		t.Fatalf("got snapshot %v, want empty", got)
	}
	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("submitting: %v", err)
	}
	if len(backend.submitted) != 1 {
		t.Fatalf("got %d submissions, want 1", len(backend.submitted))
	}
	sub := backend.submitted[0]
	if !reflect.DeepEqual(sub.Slots, []string{}) {
		t.Errorf("got slots %#v, want empty list", sub.Slots)
	}
	if sub.StaffID != "s123" || sub.Name != "王小明" {
		t.Errorf("got submission %+v, want profile fields", sub)
	}
}

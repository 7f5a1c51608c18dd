// Package session owns one user's survey state: the slot cache fetched
// from the backend, the pending selection, and the staff profile. It is
// the single mutation point between the UI layer and the domain core;
// nothing here renders and nothing here is global.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/pinyuchen/shiftwish/internal/api"
	"github.com/pinyuchen/shiftwish/internal/slot"
	"github.com/pinyuchen/shiftwish/internal/store"
)

// Validation errors.
var (
	ErrMissingStaffID = errors.New("請先輸入學號 / ID 碼")
	ErrMissingName    = errors.New("請輸入學號 / ID 碼與姓名")
	ErrNotLoaded      = errors.New("schedule not loaded yet")
)

// Backend is the remote survey API the session talks to.
// *api.Client satisfies it.
type Backend interface {
	State(ctx context.Context, staffID string) (*api.StateResponse, error)
	Submit(ctx context.Context, sub api.Submission) error
	Library() string
}

// Profile holds the user-editable identity fields. The backend's echo
// fills a field only while it is empty; it never overwrites what the
// user typed.
type Profile struct {
	StaffID string
	Name    string
	Note    string
}

// Session is one survey editing session. All mutation happens through
// its methods; the embedded selection and slot cache are never shared.
type Session struct {
	backend Backend
	store   store.Store // optional; nil disables identity persistence

	profile   Profile
	slots     []slot.Slot
	selection *slot.Selection
	loaded    bool
}

// New creates an empty session. st may be nil.
func New(backend Backend, st store.Store) *Session {
	return &Session{
		backend:   backend,
		store:     st,
		selection: slot.NewSelection(),
	}
}

// Profile returns the current identity fields.
func (s *Session) Profile() Profile {
	return s.profile
}

// Library returns the backend's deployment discriminator.
func (s *Session) Library() string {
	return s.backend.Library()
}

// SetProfile replaces the identity fields with what the user typed.
func (s *Session) SetProfile(p Profile) {
	s.profile = Profile{
		StaffID: strings.TrimSpace(p.StaffID),
		Name:    strings.TrimSpace(p.Name),
		Note:    strings.TrimSpace(p.Note),
	}
}

// RestoreIdentity prefills empty profile fields from the local store, so
// a returning user does not retype their id. Store failures are reported
// for logging but must not block the flow.
func (s *Session) RestoreIdentity(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	last, err := s.store.LastIdentity(ctx, s.backend.Library())
	if err != nil || last == nil {
		return err
	}
	if s.profile.StaffID == "" {
		s.profile.StaffID = last.StaffID
	}
	if s.profile.Name == "" {
		s.profile.Name = last.Name
	}
	if s.profile.Note == "" {
		s.profile.Note = last.Note
	}
	return nil
}

// Fetch retrieves the slot list and recorded selections without touching
// the session. The TUI runs it on a worker goroutine and applies the
// result on the UI loop; Load combines both for synchronous callers.
func (s *Session) Fetch(ctx context.Context) (*api.StateResponse, error) {
	if s.profile.StaffID == "" {
		return nil, ErrMissingStaffID
	}
	return s.backend.State(ctx, s.profile.StaffID)
}

// Apply replaces the session's slot cache and selection wholesale with a
// fetched state. Applying never submits anything.
func (s *Session) Apply(ctx context.Context, state *api.StateResponse) {
	s.slots = state.Slots
	s.selection.ReplaceAll(state.SelectedSlots)
	s.loaded = true

	if state.Staff != nil {
		if state.Staff.Name != "" && s.profile.Name == "" {
			s.profile.Name = state.Staff.Name
		}
		if state.Staff.Note != "" && s.profile.Note == "" {
			s.profile.Note = state.Staff.Note
		}
	}

	// Remember the identity for next time. Best effort only: a broken
	// local store must not fail the load.
	if s.store != nil {
		_ = s.store.Remember(ctx, store.StaffIdentity{
			Library: s.backend.Library(),
			StaffID: s.profile.StaffID,
			Name:    s.profile.Name,
			Note:    s.profile.Note,
		})
	}
}

// Load fetches and applies in one step.
func (s *Session) Load(ctx context.Context) error {
	state, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Apply(ctx, state)
	return nil
}

// Loaded reports whether a state fetch has succeeded this session.
func (s *Session) Loaded() bool {
	return s.loaded
}

// Slots returns the cached slot records from the last load.
func (s *Session) Slots() []slot.Slot {
	return s.slots
}

// Rows runs the grid pipeline over the cached slots.
func (s *Session) Rows(policy slot.Policy) []slot.Row {
	return slot.BuildRows(s.slots, policy)
}

// Toggle flips a slot id in the pending selection and reports the new
// state: true means now selected.
func (s *Session) Toggle(id string) bool {
	return s.selection.Toggle(id)
}

// Selected reports whether a slot id is in the pending selection.
func (s *Session) Selected(id string) bool {
	return s.selection.Has(id)
}

// Clear empties the pending selection. The backend is untouched until
// the next submit.
func (s *Session) Clear() {
	s.selection.Clear()
}

// Snapshot returns the pending selection in insertion order.
func (s *Session) Snapshot() []string {
	return s.selection.Snapshot()
}

// SelectedCount returns the number of pending selections.
func (s *Session) SelectedCount() int {
	return s.selection.Len()
}

// BuildSubmission validates the profile and snapshots the pending
// selection into a submit payload. An empty selection is a valid
// payload: it withdraws every previous choice.
func (s *Session) BuildSubmission() (api.Submission, error) {
	if s.profile.StaffID == "" || s.profile.Name == "" {
		return api.Submission{}, ErrMissingName
	}
	return api.Submission{
		StaffID: s.profile.StaffID,
		Name:    s.profile.Name,
		Note:    s.profile.Note,
		Slots:   s.selection.Snapshot(),
	}, nil
}

// Deliver transmits a previously built payload. Like Fetch, it reads no
// mutable session state, so the TUI can run it on a worker goroutine.
func (s *Session) Deliver(ctx context.Context, sub api.Submission) error {
	return s.backend.Submit(ctx, sub)
}

// Submit builds and delivers in one step.
func (s *Session) Submit(ctx context.Context) error {
	sub, err := s.BuildSubmission()
	if err != nil {
		return err
	}
	return s.Deliver(ctx, sub)
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinyuchen/shiftwish/internal/config"
	"github.com/pinyuchen/shiftwish/internal/session"
	"github.com/pinyuchen/shiftwish/internal/slot"
	"github.com/pinyuchen/shiftwish/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeForm Mode = iota // editing the identity fields
	ModeGrid             // navigating and toggling the schedule grid
)

// Identity form field indices.
const (
	fieldStaffID = iota
	fieldName
	fieldNote
	fieldCount
)

// Position is the cursor position in the grid.
type Position struct {
	Row int // day row
	Col int // shift column
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	sess   *session.Session
	config *config.Config
	policy slot.Policy

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	mode    Mode
	inputs  [fieldCount]textinput.Model
	focus   int
	rows    []slot.Row
	cursor  Position
	pending bool // a load or submit is in flight; triggers are disabled

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg   string
	statusStyle statusKind
	statusTime  time.Time
}

type statusKind int

const (
	statusNeutral statusKind = iota
	statusError
	statusSuccess
)

// New creates a new TUI model. The session should already have its
// identity restored from the local store.
func New(sess *session.Session, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	m := &Model{
		sess:   sess,
		config: cfg,
		policy: cfg.Policy(),
		theme:  t,
		styles: styles,
		mode:   ModeForm,
	}

	placeholders := [fieldCount]string{"學號 / ID 碼", "姓名", "備註（可留空）"}
	profile := sess.Profile()
	initial := [fieldCount]string{profile.StaffID, profile.Name, profile.Note}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 28
		ti.SetValue(initial[i])
		m.inputs[i] = ti
	}
	m.inputs[fieldStaffID].Focus()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// syncProfile pushes the form fields into the session.
func (m *Model) syncProfile() {
	m.sess.SetProfile(session.Profile{
		StaffID: m.inputs[fieldStaffID].Value(),
		Name:    m.inputs[fieldName].Value(),
		Note:    m.inputs[fieldNote].Value(),
	})
}

// pullProfile refreshes the form fields from the session, after the
// backend echo fills empty name/note.
func (m *Model) pullProfile() {
	profile := m.sess.Profile()
	if m.inputs[fieldName].Value() == "" && profile.Name != "" {
		m.inputs[fieldName].SetValue(profile.Name)
	}
	if m.inputs[fieldNote].Value() == "" && profile.Note != "" {
		m.inputs[fieldNote].SetValue(profile.Note)
	}
}

// cellAt returns the cell under the cursor, or nil when the grid is
// empty or the cursor sits on nothing.
func (m *Model) cellAt(pos Position) *slot.Cell {
	if pos.Row < 0 || pos.Row >= len(m.rows) {
		return nil
	}
	row := m.rows[pos.Row]
	if pos.Col < 0 || pos.Col >= len(row.Cells) {
		return nil
	}
	return &row.Cells[pos.Col]
}

// setStatus shows a transient status line.
func (m *Model) setStatus(msg string, kind statusKind) {
	m.statusMsg = msg
	m.statusStyle = kind
	m.statusTime = time.Now().Add(8 * time.Second)
}

// Run starts the TUI.
func Run(sess *session.Session, cfg *config.Config) error {
	return RunWithDebug(sess, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(sess *session.Session, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(New(sess, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite implements Store using a local SQLite file.
type SQLite struct {
	db *sql.DB
}

// Open creates the database file (and its directory) if needed and runs
// migrations.
func Open(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS staff_identity (
			library    TEXT PRIMARY KEY,
			staff_id   TEXT NOT NULL,
			name       TEXT NOT NULL DEFAULT '',
			note       TEXT NOT NULL DEFAULT '',
			updated_at DATETIME NOT NULL
		);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating staff_identity table: %w", err)
	}
	return nil
}

// LastIdentity returns the remembered identity for a library, or nil if
// none is recorded.
func (s *SQLite) LastIdentity(ctx context.Context, library string) (*StaffIdentity, error) {
	query := `
		SELECT library, staff_id, name, note, updated_at
		FROM staff_identity
		WHERE library = ?
	`

	var (
		id        StaffIdentity
		updatedAt string
	)
	err := s.db.QueryRowContext(ctx, query, library).Scan(
		&id.Library,
		&id.StaffID,
		&id.Name,
		&id.Note,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying staff identity: %w", err)
	}

	id.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}
	return &id, nil
}

// Remember records the identity, replacing any previous record for the
// same library.
func (s *SQLite) Remember(ctx context.Context, id StaffIdentity) error {
	if id.UpdatedAt.IsZero() {
		id.UpdatedAt = time.Now()
	}

	query := `
		INSERT INTO staff_identity (library, staff_id, name, note, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(library) DO UPDATE SET
			staff_id = excluded.staff_id,
			name = excluded.name,
			note = excluded.note,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		id.Library,
		id.StaffID,
		id.Name,
		id.Note,
		id.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving staff identity: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

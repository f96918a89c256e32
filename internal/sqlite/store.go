// Package sqlite implements the SQLite storage backend for the rolodex.
// The whole address book is persisted as one snapshot: Save rewrites
// every contact row in a single transaction, Load reads them back in
// position order through the validating snapshot path.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "rolodex.db"

// Compile-time interface check: Store must implement book.Store.
var _ book.Store = (*Store)(nil)

// Store is the SQLite-backed snapshot store.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the
// database file inside it, and ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Load reads all contact rows in position order and restores the
// address book, re-validating every field. An empty table yields an
// empty book.
func (s *Store) Load() (*book.AddressBook, error) {
	rows, err := s.db.Query("SELECT name, phones, birthday FROM contacts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var snapshots []book.RecordSnapshot
	for rows.Next() {
		var (
			name       string
			phonesJSON string
			birthday   sql.NullString
		)
		if err := rows.Scan(&name, &phonesJSON, &birthday); err != nil {
			return nil, fmt.Errorf("scanning contact row: %w", err)
		}
		var phones []string
		if err := json.Unmarshal([]byte(phonesJSON), &phones); err != nil {
			return nil, fmt.Errorf("decoding phones for %q: %w", name, err)
		}
		snapshots = append(snapshots, book.RecordSnapshot{
			Name:     name,
			Phones:   phones,
			Birthday: birthday.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading contacts: %w", err)
	}

	return book.Restore(snapshots)
}

// Save replaces the persisted snapshot with the book's current contents
// in one transaction, then records a meta row with a fresh snapshot id,
// the save time, and the contact count.
func (s *Store) Save(b *book.AddressBook) error {
	snapshots := b.Snapshot()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM meta"); err != nil {
		return fmt.Errorf("clearing meta: %w", err)
	}

	for position, snap := range snapshots {
		phones, err := json.Marshal(snap.Phones)
		if err != nil {
			return fmt.Errorf("encoding phones for %q: %w", snap.Name, err)
		}
		var birthday any
		if snap.Birthday != "" {
			birthday = snap.Birthday
		}
		if _, err := tx.Exec(
			"INSERT INTO contacts (position, name, phones, birthday) VALUES (?, ?, ?, ?)",
			position, snap.Name, string(phones), birthday,
		); err != nil {
			return fmt.Errorf("persisting contact %q: %w", snap.Name, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO meta (snapshot_id, saved_at, contact_count) VALUES (?, ?, ?)",
		newSnapshotID(), time.Now().UTC().Format(time.RFC3339), len(snapshots),
	); err != nil {
		return fmt.Errorf("persisting meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Close closes the database. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// newSnapshotID generates a UUID v7 snapshot id, falling back to v4 if
// v7 generation fails.
func newSnapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

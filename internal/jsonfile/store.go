// Package jsonfile implements the JSON Lines storage backend for the
// rolodex: one contact snapshot per line in a single file, written
// atomically with the temp-file, fsync, rename pattern.
package jsonfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// fileName is the snapshot file created inside the data directory.
const fileName = "contacts.jsonl"

// Compile-time interface check: Store must implement book.Store.
var _ book.Store = (*Store)(nil)

// Store is the JSONL-backed snapshot store.
type Store struct {
	path string
}

// Open creates the data directory if needed. The snapshot file itself
// is created lazily on the first Save.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{path: filepath.Join(dataDir, fileName)}, nil
}

// Load reads the snapshot file line by line and restores the address
// book. A missing file yields an empty book. Lines that are not valid
// snapshot JSON are skipped; lines that decode but fail field
// validation abort the load.
func (s *Store) Load() (*book.AddressBook, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return book.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	var snapshots []book.RecordSnapshot
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var snap book.RecordSnapshot
		if err := json.Unmarshal(line, &snap); err != nil {
			// Skip malformed lines.
			continue
		}
		snapshots = append(snapshots, snap)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", s.path, err)
	}

	return book.Restore(snapshots)
}

// Save atomically replaces the snapshot file with the book's current
// contents, one JSON-encoded record per line.
func (s *Store) Save(b *book.AddressBook) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".contacts-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for _, snap := range b.Snapshot() {
		if err := enc.Encode(snap); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("encoding record %q: %w", snap.Name, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Close releases nothing: the store holds no open handles between
// operations. Idempotent.
func (s *Store) Close() error {
	return nil
}

// Package journal implements the lock journal as a flat JSON file.
package journal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.LockJournal using a flat JSON file.
type Store struct {
	path    string
	mu      sync.RWMutex
	entries []domain.LockRecord
}

var _ ports.LockJournal = (*Store)(nil)

// NewStore creates a new journal backed by the file at the given path.
// The file is created on the first Record.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read lock journal"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal lock journal"), "path", s.path)
	}

	return nil
}

// save writes the journal. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lock journal")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for lock journal")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lock journal"), "path", s.path)
	}

	return nil
}

// Record appends a record and persists the journal.
func (s *Store) Record(record domain.LockRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, record)
	if err := s.save(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return err
	}
	return nil
}

// Entries returns all records, oldest first.
func (s *Store) Entries() ([]domain.LockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries), nil
}

// Package jsonstore implements ports.PairStore as a single human-readable
// JSON file: an ordered array of {input, output} records, loaded wholesale
// at startup and rewritten wholesale on every mutation. Writes go through
// a temp file + rename so readers never observe a partial store.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/corey/recall/internal/ports"
)

// Store implements ports.PairStore backed by one JSON file.
type Store struct {
	path string
}

// NewStore creates a store over the given file path. The file is not
// touched until Load or Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the full pair collection. A missing file is not fatal: the
// session starts empty and a warning is logged.
func (s *Store) Load() ([]*ports.Pair, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		slog.Warn("pair store not found, starting empty", "path", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read pair store: %w", err)
	}

	var pairs []*ports.Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parse pair store %s: %w", s.path, err)
	}
	return pairs, nil
}

// Save rewrites the entire collection. The replacement is fully written
// and synced before it displaces the old content.
func (s *Store) Save(pairs []*ports.Pair) error {
	if pairs == nil {
		pairs = []*ports.Pair{}
	}
	data, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pairs: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".pairs-*.json")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp store: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace pair store: %w", err)
	}
	return nil
}

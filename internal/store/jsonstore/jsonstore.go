package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/gupio/tracker/internal/model"
)

// JSON-backed snapshot storage. The whole collection lives under one fixed
// key (a single file), human-readable, and every write overwrites it
// wholesale — a successful write always leaves the file internally
// consistent.

// DefaultFileName is the fixed namespace the tracker persists under.
const DefaultFileName = "gupio_tasks.json"

type Store struct {
	fs   afero.Fs
	path string
}

func New(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Load reads the persisted collection. A missing file is an empty
// collection, not an error.
func (s *Store) Load() ([]model.Task, error) {
	b, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return tasks, nil
}

// Save replaces the persisted collection with the given one.
func (s *Store) Save(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Clear removes the snapshot entirely. Clearing an absent file is a no-op.
func (s *Store) Clear() error {
	if err := s.fs.Remove(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrCorruptState marks a state file that exists but cannot be read or
// parsed. Callers are expected to log it and continue from an empty set.
var ErrCorruptState = errors.New("corrupt state file")

// Store persists the set of slot identifiers that have already triggered a
// notification. The file holds a flat JSON array of identifier strings.
type Store struct {
	path string
}

// New creates a Store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the previously-notified identifiers. A missing file yields an
// empty set and no error; an unreadable or malformed file yields an empty set
// and an error wrapping ErrCorruptState.
func (s *Store) Load() (map[string]struct{}, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]struct{}{}, nil
		}
		return map[string]struct{}{}, fmt.Errorf("%w: reading %s: %v", ErrCorruptState, s.path, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return map[string]struct{}{}, fmt.Errorf("%w: parsing %s: %v", ErrCorruptState, s.path, err)
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// Save replaces the state file with the given identifiers. Previous contents
// are dropped, not merged: after each run the file mirrors exactly the current
// filtered slot set.
func (s *Store) Save(ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "notified_slots.json"))

	set, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file returned error: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %d entries", len(set))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notified_slots.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	store := New(path)
	set, err := store.Load()

	if !errors.Is(err, ErrCorruptState) {
		t.Errorf("expected ErrCorruptState, got %v", err)
	}
	if len(set) != 0 {
		t.Errorf("expected empty set despite corruption, got %d entries", len(set))
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "notified_slots.json"))

	ids := []string{
		"2025-09-05_17:30_Court 1",
		"2025-09-05_18:00_Court 3",
	}
	if err := store.Save(ids); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	set, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(set))
	}
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			t.Errorf("expected %q in loaded set", id)
		}
	}
}

func TestSaveReplacesPreviousState(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "notified_slots.json"))

	if err := store.Save([]string{"a", "b"}); err != nil {
		t.Fatalf("first Save() returned error: %v", err)
	}
	if err := store.Save([]string{"c"}); err != nil {
		t.Fatalf("second Save() returned error: %v", err)
	}

	set, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("expected full replacement leaving 1 entry, got %d", len(set))
	}
	if _, ok := set["c"]; !ok {
		t.Error("expected only the latest identifiers to survive")
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notified_slots.json")
	store := New(path)

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading state file: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected empty JSON array, got %q", string(data))
	}
}

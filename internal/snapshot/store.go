// Package snapshot persists the previous run's observed values and all-time
// maxima so trend checks can compare against them on the next invocation.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"galeracheck/internal/status"
)

// Entry is the persisted per-variable record.
type Entry struct {
	Current status.Value `json:"current"`
	Max     status.Value `json:"max"`
}

// Store maps variable name to its current value and all-time maximum. For
// numeric values Max only ever rises, within a run and across persisted
// loads. Text values are stored unchanged; they have no meaningful maximum.
type Store struct {
	entries map[string]Entry
}

func New() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Set records the current value for name and raises Max if the new numeric
// value exceeds the tracked numeric maximum.
func (s *Store) Set(name string, v status.Value) {
	e, ok := s.entries[name]
	if ok && v.IsNumeric() && e.Max.IsNumeric() && e.Max.Float() > v.Float() {
		e.Current = v
		s.entries[name] = e
		return
	}
	s.entries[name] = Entry{Current: v, Max: v}
}

// Get returns the current value for name, if it was ever observed.
func (s *Store) Get(name string) (status.Value, bool) {
	e, ok := s.entries[name]
	return e.Current, ok
}

// Max returns the tracked maximum for name, if it was ever observed.
func (s *Store) Max(name string) (status.Value, bool) {
	e, ok := s.entries[name]
	return e.Max, ok
}

func (s *Store) Contains(name string) bool {
	_, ok := s.entries[name]
	return ok
}

func (s *Store) Len() int { return len(s.entries) }

// Clone returns an independent copy. The engine seeds the current run's
// store from the loaded previous store this way, so maxima carry across
// runs while the previous store stays read-only.
func (s *Store) Clone() *Store {
	c := New()
	for name, e := range s.entries {
		c.entries[name] = e
	}
	return c
}

// LoadResult reports how a snapshot load resolved. Loaded is false both on a
// first run (no file yet) and on a degraded load (unreadable or corrupt
// file); Err carries the reason so callers can tell the two apart in logs.
type LoadResult struct {
	Store  *Store
	Loaded bool
	Err    error
}

// Load reads a persisted snapshot. It never fails the run: any structural
// problem degrades to an empty store, because a broken history file must not
// block monitoring.
func Load(path string) *LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadResult{Store: New(), Err: err}
	}
	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return &LoadResult{Store: New(), Err: fmt.Errorf("corrupt snapshot %s: %w", path, err)}
	}
	if entries == nil {
		entries = make(map[string]Entry)
	}
	return &LoadResult{Store: &Store{entries: entries}, Loaded: true}
}

// Save writes the full store, replacing any prior content.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

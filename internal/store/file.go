package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStore is a JSON-file-backed [CollectionStore] for single-node
// deployments without a database. The whole state is held in memory and
// flushed to disk after every successful Put; the write goes through a
// temporary file and rename so a crash mid-flush cannot truncate the state.
//
// Single-writer assumption: the file carries no cross-process coordination.
// Two processes pointed at the same path will overwrite each other's
// changes, exactly the last-write-wins race the version contract exists to
// surface within one process. Use the SQL backends when more than one
// process writes.
type fileStore struct {
	path string

	mu          sync.RWMutex
	collections map[string]Collection
}

type filePersistedState struct {
	Collections map[string]filePersistedCollection `json:"collections"`
}

type filePersistedCollection struct {
	Records json.RawMessage `json:"records"`
	Version int64           `json:"version"`
}

// NewFileStore opens (or creates) a JSON-file-backed collection store at
// path.
func NewFileStore(path string) (CollectionStore, error) {
	if path == "" {
		return nil, errors.New("file store path is empty")
	}

	s := &fileStore{
		path:        path,
		collections: make(map[string]Collection),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading store file %q: %w", s.path, err)
	}

	var state filePersistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return fmt.Errorf("parsing store file %q: %w", s.path, err)
	}
	for key, col := range state.Collections {
		s.collections[key] = Collection{Records: col.Records, Version: col.Version}
	}
	return nil
}

// flush persists the in-memory state. Caller must hold the write lock.
func (s *fileStore) flush() error {
	state := filePersistedState{Collections: make(map[string]filePersistedCollection, len(s.collections))}
	for key, col := range s.collections {
		state.Collections[key] = filePersistedCollection{Records: col.Records, Version: col.Version}
	}

	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}
	return nil
}

func (s *fileStore) Get(_ context.Context, key string) (Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collections[key]
	if !ok {
		return Collection{Version: 0}, nil
	}

	records := make([]byte, len(col.Records))
	copy(records, col.Records)
	return Collection{Records: records, Version: col.Version}, nil
}

func (s *fileStore) Put(_ context.Context, key string, col Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.collections[key].Version
	if col.Version != current {
		return ErrVersionConflict
	}

	records := make([]byte, len(col.Records))
	copy(records, col.Records)

	previous, hadPrevious := s.collections[key]
	s.collections[key] = Collection{Records: records, Version: current + 1}

	if err := s.flush(); err != nil {
		// roll the in-memory state back so memory and disk stay consistent
		if hadPrevious {
			s.collections[key] = previous
		} else {
			delete(s.collections, key)
		}
		return err
	}
	return nil
}

func (s *fileStore) Close() error {
	return nil
}

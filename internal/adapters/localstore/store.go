// Package localstore is the durable, device-local key-value persistence layer
// backing the offline queue, form drafts, the reference-data cache and the
// PIN vault. Values are JSON documents, one file per key, written atomically
// via a temp file and rename so a crash mid-write never corrupts a key.
//
// Single-writer assumption: access is serialised in-process with a mutex;
// concurrent processes writing the same directory are outside the contract.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store is a file-backed JSON key-value store rooted at one directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore opens (creating if needed) a store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local store directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Put marshals v and overwrites the value for key durably.
func (s *Store) Put(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}
	return nil
}

// Get unmarshals the value for key into v. The ok result is false when the
// key is absent; a corrupt value is reported as an error so callers can apply
// their own treat-as-absent policy.
func (s *Store) Get(key string, v any) (ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse value for key %s: %w", key, err)
	}
	return true, nil
}

// Delete removes the value for key. Idempotent if the key is absent.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

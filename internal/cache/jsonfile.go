package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// JSONStore keeps snapshots in a single JSON file, one entry per cache key.
// It suits development and test environments where pulling in SQLite is
// not worth it.
type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	state    map[string]json.RawMessage
}

// NewJSONStore loads (or initializes) the snapshot file at the given path.
func NewJSONStore(filePath string) (*JSONStore, error) {
	s := &JSONStore{
		filePath: filePath,
		state:    make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) Load(_ context.Context, userID string) (domain.UserProgress, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.state[snapshotKey(userID)]
	if !ok {
		return domain.NewUserProgress(), false, nil
	}
	progress, ok := decodeSnapshot(payload, userID)
	return progress, ok, nil
}

func (s *JSONStore) Save(_ context.Context, userID string, progress domain.UserProgress) error {
	payload, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[snapshotKey(userID)] = payload
	return s.persistLocked()
}

func (s *JSONStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state, snapshotKey(userID))
	return s.persistLocked()
}

func (s *JSONStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		// A mangled cache file must never block startup.
		slog.Warn("resetting corrupt snapshot file", "path", s.filePath, "error", err)
		s.state = make(map[string]json.RawMessage)
	}
	return nil
}

func (s *JSONStore) persistLocked() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.filePath, data, 0o644)
}

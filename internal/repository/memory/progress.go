// Package memory provides in-memory repository implementations. They back
// the offline/demo mode (no Postgres configured) and keep handler and
// service tests free of database plumbing.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

type progressKey struct {
	userID   string
	moduleID string
}

// ProgressStore implements domain.ProgressStore in memory.
type ProgressStore struct {
	mu   sync.RWMutex
	rows map[progressKey]domain.ProgressRow
}

// NewProgressStore creates an empty in-memory progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{rows: make(map[progressKey]domain.ProgressRow)}
}

func (s *ProgressStore) FetchAll(_ context.Context, userID string) ([]domain.ProgressRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []domain.ProgressRow
	for key, row := range s.rows {
		if key.userID == userID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *ProgressStore) Upsert(_ context.Context, row domain.ProgressRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row.UpdatedAt = time.Now().UTC()
	s.rows[progressKey{userID: row.UserID, moduleID: row.ModuleID}] = row
	return nil
}

// Seed inserts a row verbatim, keeping its UpdatedAt. Test helper.
func (s *ProgressStore) Seed(row domain.ProgressRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[progressKey{userID: row.UserID, moduleID: row.ModuleID}] = row
}

// Len reports the number of stored rows.
func (s *ProgressStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

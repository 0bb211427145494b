// Package cache persists per-user progress snapshots on the local device.
// It is the fast, offline-available side of reconciliation: reads never
// touch the network, and a missing or corrupt snapshot simply reads as
// absent so the app stays usable.
package cache

import (
	"context"
	"errors"
	"strings"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// Store persists one serialized UserProgress snapshot per user.
type Store interface {
	// Load returns the snapshot for the user. The bool is false when no
	// usable snapshot exists; corrupt snapshots read as absent, not as
	// errors.
	Load(ctx context.Context, userID string) (domain.UserProgress, bool, error)
	Save(ctx context.Context, userID string, progress domain.UserProgress) error
	Clear(ctx context.Context, userID string) error
}

const (
	EngineSQLite = "sqlite"
	EngineJSON   = "json"
)

// NewByEngine constructs a Store for the configured engine.
func NewByEngine(engine, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return NewSQLiteStore(path)
	case EngineJSON:
		return NewJSONStore(path)
	default:
		return nil, errors.New("unsupported cache engine: " + engine)
	}
}

// snapshotKey namespaces a user ID into a cache key. The prefix matches
// the key the web client historically used in browser storage.
func snapshotKey(userID string) string {
	return "dme_progress_" + userID
}

package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// SQLiteStore keeps snapshots in a single-table SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the snapshot database at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	// WAL keeps snapshot reads cheap while a save is in flight.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `
		CREATE TABLE IF NOT EXISTS progress_snapshots (
			cache_key  TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, userID string) (domain.UserProgress, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM progress_snapshots WHERE cache_key = ?", snapshotKey(userID),
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewUserProgress(), false, nil
		}
		return domain.NewUserProgress(), false, fmt.Errorf("load snapshot: %w", err)
	}

	progress, ok := decodeSnapshot([]byte(payload), userID)
	return progress, ok, nil
}

func (s *SQLiteStore) Save(ctx context.Context, userID string, progress domain.UserProgress) error {
	payload, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO progress_snapshots (cache_key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		snapshotKey(userID), string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM progress_snapshots WHERE cache_key = ?", snapshotKey(userID)); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// decodeSnapshot unmarshals a stored snapshot. A corrupt payload is
// treated as cache-absent so reconciliation can proceed from remote data.
func decodeSnapshot(payload []byte, userID string) (domain.UserProgress, bool) {
	var progress domain.UserProgress
	if err := json.Unmarshal(payload, &progress); err != nil {
		slog.Warn("discarding corrupt progress snapshot", "user_id", userID, "error", err)
		return domain.NewUserProgress(), false
	}
	if progress.Modules == nil {
		progress.Modules = make(map[string]domain.ModuleProgress)
	}
	if progress.Badges == nil {
		progress.Badges = []string{}
	}
	return progress, true
}

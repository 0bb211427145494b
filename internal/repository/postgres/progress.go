package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// ProgressStore implements domain.ProgressStore on PostgreSQL.
type ProgressStore struct {
	pool *pgxpool.Pool
}

func (s *ProgressStore) FetchAll(ctx context.Context, userID string) ([]domain.ProgressRow, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT user_id, module_id, video_watched, game_completed, quiz_completed, quiz_score, status, updated_at
		 FROM module_progress
		 WHERE user_id = $1
		 ORDER BY module_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query progress rows: %w", err)
	}
	defer rows.Close()

	var result []domain.ProgressRow
	for rows.Next() {
		var r domain.ProgressRow
		if err := rows.Scan(&r.UserID, &r.ModuleID, &r.VideoWatched, &r.GameCompleted,
			&r.QuizCompleted, &r.QuizScore, &r.Status, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// Upsert replaces all fields of the (user, module) row. The update
// timestamp is stamped here, server-side, so retries stay idempotent.
func (s *ProgressStore) Upsert(ctx context.Context, row domain.ProgressRow) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO module_progress (user_id, module_id, video_watched, game_completed, quiz_completed, quiz_score, status, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id, module_id) DO UPDATE SET
		   video_watched  = EXCLUDED.video_watched,
		   game_completed = EXCLUDED.game_completed,
		   quiz_completed = EXCLUDED.quiz_completed,
		   quiz_score     = EXCLUDED.quiz_score,
		   status         = EXCLUDED.status,
		   updated_at     = EXCLUDED.updated_at`,
		row.UserID, row.ModuleID, row.VideoWatched, row.GameCompleted,
		row.QuizCompleted, row.QuizScore, row.Status, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert progress row: %w", err)
	}
	return nil
}

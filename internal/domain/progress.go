package domain

import (
	"context"
	"time"
)

// ModuleProgress tracks one learner's progress through a single course module.
// The three stage flags are monotonic: once a stage is done it stays done.
// CompletedAt is stamped exactly once, the first time all three flags hold.
type ModuleProgress struct {
	ModuleID      string     `json:"moduleId"`
	VideoWatched  bool       `json:"videoWatched"`
	GameCompleted bool       `json:"gameCompleted"`
	QuizCompleted bool       `json:"quizCompleted"`
	Score         int        `json:"score"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// Done reports whether all three learning stages are complete.
func (m ModuleProgress) Done() bool {
	return m.VideoWatched && m.GameCompleted && m.QuizCompleted
}

// UserProgress is the aggregate progress snapshot for one learner.
// Points, Badges and CertificateEarned are derived from Modules and
// recomputed from scratch on every change, never appended incrementally.
type UserProgress struct {
	Modules           map[string]ModuleProgress `json:"modules"`
	Points            int                       `json:"points"`
	Badges            []string                  `json:"badges"`
	CertificateEarned bool                      `json:"certificateEarned"`
}

// NewUserProgress returns an empty progress snapshot.
func NewUserProgress() UserProgress {
	return UserProgress{Modules: make(map[string]ModuleProgress), Badges: []string{}}
}

// Clone returns a deep copy. Snapshots handed to callers must never share
// the modules map with the tracker's own state.
func (p UserProgress) Clone() UserProgress {
	out := p
	out.Modules = make(map[string]ModuleProgress, len(p.Modules))
	for id, m := range p.Modules {
		out.Modules[id] = m
	}
	out.Badges = append([]string(nil), p.Badges...)
	return out
}

// Progress row statuses persisted in the remote store.
const (
	ProgressStatusInProgress = "in-progress"
	ProgressStatusCompleted  = "completed"
)

// ProgressRow is one remote store row, keyed by (user, module).
type ProgressRow struct {
	UserID        string    `json:"userId"`
	ModuleID      string    `json:"moduleId"`
	VideoWatched  bool      `json:"videoWatched"`
	GameCompleted bool      `json:"gameCompleted"`
	QuizCompleted bool      `json:"quizCompleted"`
	QuizScore     int       `json:"quizScore"`
	Status        string    `json:"status"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProgressStore is the remote progress store the sync core reconciles
// against. Implementations must scope FetchAll to the given user and make
// Upsert replace-all-fields on the (user, module) conflict key, stamping
// UpdatedAt themselves, so retries are idempotent.
type ProgressStore interface {
	FetchAll(ctx context.Context, userID string) ([]ProgressRow, error)
	Upsert(ctx context.Context, row ProgressRow) error
}

// SyncStatus describes the state of the local-to-remote sync pipeline.
type SyncStatus string

const (
	SyncIdle    SyncStatus = "idle"
	SyncSyncing SyncStatus = "syncing"
	SyncSynced  SyncStatus = "synced"
	SyncError   SyncStatus = "error"
)

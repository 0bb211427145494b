// Package progress implements the client-side progress reconciliation
// core: a per-session tracker that merges the locally cached learning
// progress with the remotely persisted copy, applies stage-completion
// updates, and keeps both sides converging without ever blocking the
// caller on the network.
package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/cache"
	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

const pushTimeout = 10 * time.Second

// Tracker owns the in-memory UserProgress for one authenticated session.
// It is constructed fresh at login and discarded at logout; two users
// never share a tracker, which is what keeps their progress from
// blending. All state transitions compute a new snapshot and replace the
// old one atomically under the mutex.
type Tracker struct {
	userID string
	local  cache.Store
	remote domain.ProgressStore
	clock  func() time.Time

	mu       sync.Mutex
	progress domain.UserProgress
	loaded   bool
	status   domain.SyncStatus
	// refreshGen orders reconciliation passes: a pass whose fetch resolves
	// after a newer pass was issued is discarded (last issued wins).
	refreshGen uint64

	pushes sync.WaitGroup
}

// NewTracker creates a tracker for the given user backed by the local
// snapshot cache and the remote progress store.
func NewTracker(userID string, local cache.Store, remote domain.ProgressStore) *Tracker {
	return &Tracker{
		userID:   userID,
		local:    local,
		remote:   remote,
		clock:    time.Now,
		progress: domain.NewUserProgress(),
		status:   domain.SyncIdle,
	}
}

// UserID returns the user this tracker belongs to.
func (t *Tracker) UserID() string {
	return t.userID
}

// Progress returns a snapshot of the current converged state.
func (t *Tracker) Progress() domain.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress.Clone()
}

// GetModuleProgress returns the entry for one module, or nil if the user
// has not touched it yet.
func (t *Tracker) GetModuleProgress(moduleID string) *domain.ModuleProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.progress.Modules[moduleID]
	if !ok {
		return nil
	}
	return &m
}

// CanAccessModule reports whether the module is unlocked for this user.
func (t *Tracker) CanAccessModule(moduleID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return CanAccess(t.progress, moduleID)
}

// IsLoaded reports whether the first reconciliation pass has completed.
func (t *Tracker) IsLoaded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loaded
}

// SyncStatus returns the state of the local-to-remote sync pipeline.
func (t *Tracker) SyncStatus() domain.SyncStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Wait blocks until all in-flight remote pushes have settled. Used on
// shutdown and in tests; callers on the request path never wait.
func (t *Tracker) Wait() {
	t.pushes.Wait()
}

// Update is a partial per-module progress update. Only non-nil fields are
// applied; fields left nil are never touched, so updating one stage can
// never clear another.
type Update struct {
	VideoWatched  *bool
	GameCompleted *bool
	QuizCompleted *bool
	Score         *int
}

// ApplyUpdate merges an update into one module's entry, recomputes the
// derived stats, persists the new snapshot to the local cache, and
// schedules a fire-and-forget push of the affected module to the remote
// store. The returned snapshot is what the caller should display; a
// failed push later only moves the sync status to error, it never rolls
// the local state back.
func (t *Tracker) ApplyUpdate(ctx context.Context, moduleID string, update Update) domain.UserProgress {
	t.mu.Lock()

	entry, ok := t.progress.Modules[moduleID]
	if !ok {
		entry = domain.ModuleProgress{ModuleID: moduleID}
	}
	if update.VideoWatched != nil {
		entry.VideoWatched = *update.VideoWatched
	}
	if update.GameCompleted != nil {
		entry.GameCompleted = *update.GameCompleted
	}
	if update.QuizCompleted != nil {
		entry.QuizCompleted = *update.QuizCompleted
	}
	if update.Score != nil {
		entry.Score = *update.Score
	}

	// The completion timestamp is stamped exactly once, the first time all
	// three stages hold. Re-satisfying the condition later keeps the
	// original instant.
	if entry.Done() && entry.CompletedAt == nil {
		now := t.clock().UTC()
		entry.CompletedAt = &now
	}

	modules := make(map[string]domain.ModuleProgress, len(t.progress.Modules)+1)
	for id, m := range t.progress.Modules {
		modules[id] = m
	}
	modules[moduleID] = entry

	next := ComputeStats(modules).apply(modules)
	t.progress = next

	if err := t.local.Save(ctx, t.userID, next); err != nil {
		slog.Error("persist progress snapshot", "user_id", t.userID, "error", err)
	}

	row := rowFromModule(t.userID, entry, t.clock().UTC())
	t.pushes.Add(1)
	t.mu.Unlock()

	go t.push(row)

	return next.Clone()
}

// push upserts one module row to the remote store, reporting the
// syncing -> synced | error transition for observability.
func (t *Tracker) push(row domain.ProgressRow) {
	defer t.pushes.Done()

	t.setStatus(domain.SyncSyncing)

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	if err := t.remote.Upsert(ctx, row); err != nil {
		slog.Error("push progress to remote store", "user_id", t.userID, "module_id", row.ModuleID, "error", err)
		t.setStatus(domain.SyncError)
		return
	}
	t.setStatus(domain.SyncSynced)
}

// syncUp pushes a locally-ahead module during reconciliation. Failures
// are logged and dropped; the next pass re-detects the divergence.
func (t *Tracker) syncUp(row domain.ProgressRow) {
	defer t.pushes.Done()

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	if err := t.remote.Upsert(ctx, row); err != nil {
		slog.Error("sync-up push failed", "user_id", t.userID, "module_id", row.ModuleID, "error", err)
	}
}

func (t *Tracker) setStatus(status domain.SyncStatus) {
	t.mu.Lock()
	t.status = status
	t.mu.Unlock()
}

// rowFromModule converts a module entry into its remote-store row shape.
func rowFromModule(userID string, m domain.ModuleProgress, now time.Time) domain.ProgressRow {
	status := domain.ProgressStatusInProgress
	if m.Done() {
		status = domain.ProgressStatusCompleted
	}
	return domain.ProgressRow{
		UserID:        userID,
		ModuleID:      m.ModuleID,
		VideoWatched:  m.VideoWatched,
		GameCompleted: m.GameCompleted,
		QuizCompleted: m.QuizCompleted,
		QuizScore:     m.Score,
		Status:        status,
		UpdatedAt:     now,
	}
}

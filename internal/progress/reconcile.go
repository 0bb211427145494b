package progress

import (
	"context"
	"log/slog"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// Reconcile runs one reconciliation pass: load the local baseline, fetch
// the remote rows, merge them module-by-module, push anything the remote
// store is missing, and persist the converged snapshot. It never returns
// an error: a failed fetch degrades to the local baseline with the sync
// status set to error, and the UI stays usable offline.
func (t *Tracker) Reconcile(ctx context.Context) domain.UserProgress {
	t.mu.Lock()
	t.refreshGen++
	issued := t.refreshGen
	t.status = domain.SyncSyncing
	firstLoad := !t.loaded
	t.mu.Unlock()

	// Step 1: fold the cached snapshot into the working baseline before the
	// remote fetch resolves. Folding uses the same per-module tie-break as
	// the remote merge: an update applied while the cache read was in
	// flight stays ahead of the older snapshot, so a slow read can never
	// erase it. Refreshes after first load keep the in-memory state as
	// baseline instead; it is never older than the cache.
	if firstLoad {
		baseline, ok, err := t.local.Load(ctx, t.userID)
		if err != nil {
			slog.Error("load progress snapshot", "user_id", t.userID, "error", err)
		}
		t.mu.Lock()
		if t.refreshGen == issued && ok {
			modules := mergeBaseline(t.progress.Modules, baseline.Modules)
			t.progress = ComputeStats(modules).apply(modules)
		}
		t.mu.Unlock()
	}

	// Step 2: fetch the remote copy.
	rows, err := t.remote.FetchAll(ctx, t.userID)

	t.mu.Lock()
	defer t.mu.Unlock()

	// A newer pass was issued while this fetch was in flight; its result
	// supersedes ours regardless of completion order.
	if t.refreshGen != issued {
		return t.progress.Clone()
	}

	if err != nil {
		slog.Error("fetch remote progress", "user_id", t.userID, "error", err)
		t.status = domain.SyncError
		t.loaded = true
		return t.progress.Clone()
	}

	// Step 3: merge into the current state. Merging (rather than wholesale
	// replacement) means a mutation applied while the fetch was in flight
	// can only be overridden by a remote entry that genuinely wins the
	// tie-break, never by staleness.
	merged, unsynced := mergeRemote(t.progress.Modules, rows)
	next := ComputeStats(merged).apply(merged)
	t.progress = next
	t.status = domain.SyncSynced
	t.loaded = true

	// Step 4: sync-up the modules the remote store is behind on. Best
	// effort; a failed push is re-detected by the next pass.
	now := t.clock().UTC()
	for _, id := range unsynced {
		m := merged[id]
		if !m.VideoWatched && !m.GameCompleted && !m.QuizCompleted {
			continue
		}
		t.pushes.Add(1)
		go t.syncUp(rowFromModule(t.userID, m, now))
	}

	// Step 5: persist the converged snapshot, only now that the pass is
	// complete. A partially merged state is never written.
	if err := t.local.Save(ctx, t.userID, next); err != nil {
		slog.Error("persist reconciled snapshot", "user_id", t.userID, "error", err)
	}

	return next.Clone()
}

// ForceRefresh re-runs reconciliation on demand. The readiness flag drops
// until the pass completes; if an earlier pass is still in flight, this
// one supersedes it.
func (t *Tracker) ForceRefresh(ctx context.Context) domain.UserProgress {
	t.mu.Lock()
	t.loaded = false
	t.mu.Unlock()
	return t.Reconcile(ctx)
}

// mergeBaseline folds the cached snapshot into the in-memory module map.
// The cached side only wins a module where it is genuinely ahead, under
// the same tie-break as the remote merge; everywhere else the live entry
// stands.
func mergeBaseline(live, cached map[string]domain.ModuleProgress) map[string]domain.ModuleProgress {
	merged := make(map[string]domain.ModuleProgress, len(live)+len(cached))
	for id, m := range live {
		merged[id] = m
	}
	for id, m := range cached {
		current, ok := merged[id]
		switch {
		case !ok:
			merged[id] = m
		case m.CompletedAt != nil && current.CompletedAt == nil:
			merged[id] = m
		case m.Score > current.Score:
			merged[id] = m
		}
	}
	return merged
}

// mergeRemote merges remote rows into the local module map and returns
// the merged map plus the IDs of modules the remote store is behind on.
// The tie-break is applied per module, never per field, so a merged entry
// is always one coherent side:
//
//  1. remote complete, local not  -> remote wins (authoritative once done)
//  2. remote score strictly higher -> remote wins
//  3. local complete, remote not  -> local wins, flagged for sync-up
//  4. otherwise                   -> local wins
//
// Modules with no remote row at all are flagged for sync-up as well.
func mergeRemote(local map[string]domain.ModuleProgress, rows []domain.ProgressRow) (map[string]domain.ModuleProgress, []string) {
	merged := make(map[string]domain.ModuleProgress, len(local)+len(rows))
	for id, m := range local {
		merged[id] = m
	}

	remoteSeen := make(map[string]bool, len(rows))
	var unsynced []string

	for _, row := range rows {
		remoteSeen[row.ModuleID] = true
		candidate := moduleFromRow(row)

		current, ok := merged[row.ModuleID]
		switch {
		case !ok:
			merged[row.ModuleID] = candidate
		case candidate.CompletedAt != nil && current.CompletedAt == nil:
			merged[row.ModuleID] = candidate
		case candidate.Score > current.Score:
			merged[row.ModuleID] = candidate
		case current.CompletedAt != nil && candidate.CompletedAt == nil:
			unsynced = append(unsynced, row.ModuleID)
		}
	}

	for id := range local {
		if !remoteSeen[id] {
			unsynced = append(unsynced, id)
		}
	}

	return merged, unsynced
}

// moduleFromRow builds the local representation of a remote row. The
// completion timestamp is derived: a row is complete only when all three
// stage flags hold, and then its server-side update time is the instant
// of completion.
func moduleFromRow(row domain.ProgressRow) domain.ModuleProgress {
	m := domain.ModuleProgress{
		ModuleID:      row.ModuleID,
		VideoWatched:  row.VideoWatched,
		GameCompleted: row.GameCompleted,
		QuizCompleted: row.QuizCompleted,
		Score:         row.QuizScore,
	}
	if m.Done() {
		completedAt := row.UpdatedAt
		m.CompletedAt = &completedAt
	}
	return m
}

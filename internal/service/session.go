package service

import (
	"context"
	"sync"

	"github.com/SANTHOSHG-WEB/disaster/internal/cache"
	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/progress"
)

// SessionManager hands out one progress Tracker per signed-in user.
// A tracker is created on first use and carries that user's merged
// progress state for the lifetime of their session. Switching
// identity always yields a fresh tracker, never residue from the
// previous user.
type SessionManager struct {
	local  cache.Store
	remote domain.ProgressStore

	mu       sync.Mutex
	trackers map[string]*progress.Tracker
}

// NewSessionManager creates a SessionManager backed by the given
// local cache and remote store.
func NewSessionManager(local cache.Store, remote domain.ProgressStore) *SessionManager {
	return &SessionManager{
		local:    local,
		remote:   remote,
		trackers: make(map[string]*progress.Tracker),
	}
}

// TrackerFor returns the tracker for userID, creating and hydrating
// it on first use.
func (m *SessionManager) TrackerFor(ctx context.Context, userID string) *progress.Tracker {
	m.mu.Lock()
	t, ok := m.trackers[userID]
	if !ok {
		t = progress.NewTracker(userID, m.local, m.remote)
		m.trackers[userID] = t
	}
	m.mu.Unlock()

	if !t.IsLoaded() {
		t.Reconcile(ctx)
	}
	return t
}

// EndSession tears down the tracker for userID. Pending pushes are
// allowed to finish first so no recorded progress is lost on logout.
func (m *SessionManager) EndSession(userID string) {
	m.mu.Lock()
	t, ok := m.trackers[userID]
	delete(m.trackers, userID)
	m.mu.Unlock()

	if ok {
		t.Wait()
	}
}

// Wait blocks until every live tracker has drained its pending
// pushes. Used during server shutdown.
func (m *SessionManager) Wait() {
	m.mu.Lock()
	trackers := make([]*progress.Tracker, 0, len(m.trackers))
	for _, t := range m.trackers {
		trackers = append(trackers, t)
	}
	m.mu.Unlock()

	for _, t := range trackers {
		t.Wait()
	}
}

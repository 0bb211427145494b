package handler

import (
	"net/http"

	"github.com/SANTHOSHG-WEB/disaster/internal/catalog"
	"github.com/SANTHOSHG-WEB/disaster/internal/progress"
	"github.com/SANTHOSHG-WEB/disaster/internal/service"
)

// ProgressHandler exposes the authenticated user's learning progress.
type ProgressHandler struct {
	sessions *service.SessionManager
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(sessions *service.SessionManager) *ProgressHandler {
	return &ProgressHandler{sessions: sessions}
}

// HandleGet returns the user's merged progress snapshot.
// GET /api/progress
// Response: {"progress": {...}, "syncStatus": "synced"}
func (h *ProgressHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	tracker := h.sessions.TrackerFor(r.Context(), user.ID)

	writeJSON(w, http.StatusOK, map[string]any{
		"progress":   tracker.Progress(),
		"syncStatus": tracker.SyncStatus(),
	})
}

// HandleUpdate records progress on one module.
// POST /api/progress/modules/{moduleID}
// Request:  {"videoWatched":true} (any subset of the update fields)
// Response: {"progress": {...}, "syncStatus": "syncing"}
func (h *ProgressHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	moduleID := r.PathValue("moduleID")

	if !catalog.Exists(moduleID) {
		writeError(w, http.StatusNotFound, "Module not found.")
		return
	}

	var req struct {
		VideoWatched  *bool `json:"videoWatched"`
		GameCompleted *bool `json:"gameCompleted"`
		QuizCompleted *bool `json:"quizCompleted"`
		Score         *int  `json:"score"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Score != nil && (*req.Score < 0 || *req.Score > 100) {
		writeError(w, http.StatusUnprocessableEntity, "Score must be between 0 and 100.")
		return
	}

	tracker := h.sessions.TrackerFor(r.Context(), user.ID)
	if !tracker.CanAccessModule(moduleID) {
		writeError(w, http.StatusForbidden, "Complete the previous module first.")
		return
	}

	updated := tracker.ApplyUpdate(r.Context(), moduleID, progress.Update{
		VideoWatched:  req.VideoWatched,
		GameCompleted: req.GameCompleted,
		QuizCompleted: req.QuizCompleted,
		Score:         req.Score,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"progress":   updated,
		"syncStatus": tracker.SyncStatus(),
	})
}

// HandleRefresh re-reads the remote store and re-merges, discarding
// the loaded flag first so the cache baseline is rebuilt.
// POST /api/progress/refresh
// Response: {"progress": {...}, "syncStatus": "synced"}
func (h *ProgressHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	tracker := h.sessions.TrackerFor(r.Context(), user.ID)

	refreshed := tracker.ForceRefresh(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"progress":   refreshed,
		"syncStatus": tracker.SyncStatus(),
	})
}

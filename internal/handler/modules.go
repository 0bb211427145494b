package handler

import (
	"errors"
	"net/http"

	"github.com/SANTHOSHG-WEB/disaster/internal/catalog"
	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/progress"
	"github.com/SANTHOSHG-WEB/disaster/internal/service"
)

// ModuleHandler serves the course catalog and quiz grading.
type ModuleHandler struct {
	sessions *service.SessionManager
}

// NewModuleHandler creates a new ModuleHandler.
func NewModuleHandler(sessions *service.SessionManager) *ModuleHandler {
	return &ModuleHandler{sessions: sessions}
}

// HandleList returns every module with the caller's unlock state.
// GET /api/modules
// Response: {"modules": [{...,"accessible":true,"completed":false}]}
func (h *ModuleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	tracker := h.sessions.TrackerFor(r.Context(), user.ID)
	snapshot := tracker.Progress()

	type listEntry struct {
		ModuleDTO
		Accessible bool `json:"accessible"`
		Completed  bool `json:"completed"`
	}

	modules := catalog.All()
	out := make([]listEntry, len(modules))
	for i := range modules {
		m := &modules[i]
		mp, tracked := snapshot.Modules[m.ID]
		out[i] = listEntry{
			ModuleDTO:  toModuleDTO(m),
			Accessible: progress.CanAccess(snapshot, m.ID),
			Completed:  tracked && mp.CompletedAt != nil,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"modules": out})
}

// HandleGet returns one module if the caller has unlocked it.
// GET /api/modules/{moduleID}
// Response: {"module": {...}} or 403 if still locked
func (h *ModuleHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	moduleID := r.PathValue("moduleID")

	m, err := catalog.Get(moduleID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Module not found.")
		return
	}

	tracker := h.sessions.TrackerFor(r.Context(), user.ID)
	if !tracker.CanAccessModule(moduleID) {
		writeError(w, http.StatusForbidden, "Complete the previous module first.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"module": toModuleDTO(m)})
}

// HandleQuizSubmit grades a quiz attempt and records the result on
// the caller's progress.
// POST /api/modules/{moduleID}/quiz
// Request:  {"answers": {"1-1":"option text", ...}}
// Response: {"result": {...}, "progress": {...}}
func (h *ModuleHandler) HandleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	moduleID := r.PathValue("moduleID")

	var req struct {
		Answers map[string]string `json:"answers"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	tracker := h.sessions.TrackerFor(r.Context(), user.ID)
	if catalog.Exists(moduleID) && !tracker.CanAccessModule(moduleID) {
		writeError(w, http.StatusForbidden, "Complete the previous module first.")
		return
	}

	result, err := catalog.Grade(moduleID, req.Answers)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Module not found.")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	completed := true
	updated := tracker.ApplyUpdate(r.Context(), moduleID, progress.Update{
		QuizCompleted: &completed,
		Score:         &result.Score,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"result":   result,
		"progress": updated,
	})
}

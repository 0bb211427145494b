package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/service"
)

// ShelterHandler serves the emergency shelter directory.
type ShelterHandler struct {
	shelters *service.ShelterService
}

// NewShelterHandler creates a new ShelterHandler.
func NewShelterHandler(shelters *service.ShelterService) *ShelterHandler {
	return &ShelterHandler{shelters: shelters}
}

// HandleList returns every shelter.
// GET /api/shelters
func (h *ShelterHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	shelters, err := h.shelters.List(r.Context())
	if err != nil {
		slog.Error("list shelters", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"shelters": toShelterDTOs(shelters)})
}

// HandleNearest returns shelters closest to the given point.
// GET /api/shelters/nearest?lat=13.04&lng=80.23&limit=5
func (h *ShelterHandler) HandleNearest(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(w, http.StatusBadRequest, "lat and lng query parameters are required.")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid limit.")
			return
		}
		limit = parsed
	}

	nearest, err := h.shelters.Nearest(r.Context(), lat, lng, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("nearest shelters", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	dtos := make([]NearbyShelterDTO, len(nearest))
	for i, n := range nearest {
		dtos[i] = NearbyShelterDTO{
			ShelterDTO: toShelterDTO(&n.Shelter),
			DistanceKm: n.DistanceKm,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"shelters": dtos})
}

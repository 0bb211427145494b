package handler

import (
	"log/slog"
	"net/http"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// AlertHandler serves current weather alerts.
type AlertHandler struct {
	provider      domain.AlertProvider
	defaultRegion string
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(provider domain.AlertProvider, defaultRegion string) *AlertHandler {
	return &AlertHandler{provider: provider, defaultRegion: defaultRegion}
}

// HandleList returns active alerts for a region.
// GET /api/alerts?region=tamil-nadu
func (h *AlertHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region == "" {
		region = h.defaultRegion
	}

	alerts, err := h.provider.Current(r.Context(), region)
	if err != nil {
		slog.Error("fetch alerts", "region", region, "error", err)
		writeError(w, http.StatusBadGateway, "Alert feed is unavailable.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"region": region,
		"alerts": toAlertDTOs(alerts),
	})
}

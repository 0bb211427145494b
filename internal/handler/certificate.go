package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/service"
)

// CertificateHandler handles course completion certificates.
type CertificateHandler struct {
	certs *service.CertificateService
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(certs *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certs: certs}
}

// HandleIssue issues the caller's certificate.
// POST /api/certificate
// Request:  {"recipientName":"..."} (defaults to the account display name)
// Response: {"certificate": {...}} or 403 if the course is incomplete
func (h *CertificateHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		RecipientName string `json:"recipientName"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.RecipientName == "" {
		req.RecipientName = user.DisplayName
	}

	cert, err := h.certs.Issue(r.Context(), user.ID, req.RecipientName)
	if err != nil {
		if errors.Is(err, domain.ErrNotEligible) {
			writeError(w, http.StatusForbidden, "Complete all ten modules to earn your certificate.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("issue certificate", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"certificate": toCertificateDTO(cert)})
}

// HandleGet returns the caller's certificate if one has been issued.
// GET /api/certificate
func (h *CertificateHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	cert, err := h.certs.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No certificate has been issued yet.")
			return
		}
		slog.Error("get certificate", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"certificate": toCertificateDTO(cert)})
}

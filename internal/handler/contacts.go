package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/service"
)

// ContactHandler handles emergency contact HTTP requests.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type contactRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// HandleList returns the caller's emergency contacts.
// GET /api/contacts
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	contacts, err := h.contacts.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("list contacts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"contacts": toContactDTOs(contacts)})
}

// HandleCreate adds an emergency contact.
// POST /api/contacts
func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req contactRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	contact, err := h.contacts.Add(r.Context(), user.ID, req.Name, req.Phone, req.Relation)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create contact", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"contact": toContactDTO(contact)})
}

// HandleUpdate modifies an emergency contact.
// PUT /api/contacts/{contactID}
func (h *ContactHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("contactID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact ID.")
		return
	}

	var req contactRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	contact, err := h.contacts.Update(r.Context(), user.ID, id, req.Name, req.Phone, req.Relation)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact not found.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("update contact", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"contact": toContactDTO(contact)})
}

// HandleDelete removes an emergency contact.
// DELETE /api/contacts/{contactID}
func (h *ContactHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("contactID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact ID.")
		return
	}

	if err := h.contacts.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact not found.")
			return
		}
		slog.Error("delete contact", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

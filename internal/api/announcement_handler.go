package api

import (
	"net/http"

	"github.com/skyviewhq/skyview-api/internal/api/shared"
	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/platform/logger"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// AnnouncementHandler handles announcement API requests.
type AnnouncementHandler struct {
	announcements store.AnnouncementStore
}

// NewAnnouncementHandler creates a new AnnouncementHandler with the given
// dependencies.
func NewAnnouncementHandler(announcements store.AnnouncementStore) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

// Create handles POST /announcement (admin only).
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AnnouncementRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.announcements.Create(r.Context(), &domain.Announcement{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to create announcement", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// List handles GET /announcement.
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.List(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list announcements", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, announcements)
}

package api

import (
	"net/http"
	"strconv"

	"github.com/skyviewhq/skyview-api/internal/api/shared"
	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/platform/logger"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// ApartmentHandler handles apartment listing and count requests.
type ApartmentHandler struct {
	apartments store.ApartmentStore
}

// NewApartmentHandler creates a new ApartmentHandler with the given
// dependencies.
func NewApartmentHandler(apartments store.ApartmentStore) *ApartmentHandler {
	return &ApartmentHandler{apartments: apartments}
}

// List handles GET /apartment. Pagination uses 1-based `page` and `size`
// query parameters; omitting them (or sending unparsable values) returns
// the whole collection.
func (h *ApartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parseQueryInt(r, "page")
	size := parseQueryInt(r, "size")

	apartments, err := h.apartments.List(r.Context(), page, size)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list apartments", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, apartments)
}

// Count handles GET /apartmentCount. The count covers the whole collection
// regardless of any pagination parameters on the request.
func (h *ApartmentHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.apartments.Count(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to count apartments", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}

// UnavailableCount handles GET /unAvailableApartment.
func (h *ApartmentHandler) UnavailableCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.apartments.CountByStatus(r.Context(), domain.ApartmentUnavailable)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to count unavailable apartments", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}

// parseQueryInt reads a non-negative integer query parameter, treating a
// missing or unparsable value as zero.
func parseQueryInt(r *http.Request, name string) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

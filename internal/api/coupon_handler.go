package api

import (
	"net/http"

	"github.com/skyviewhq/skyview-api/internal/api/shared"
	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/platform/logger"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// CouponHandler handles coupon API requests.
type CouponHandler struct {
	coupons store.CouponStore
}

// NewCouponHandler creates a new CouponHandler with the given dependencies.
func NewCouponHandler(coupons store.CouponStore) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

// List handles GET /coupons. Coupons are public so the frontend can show
// them before login.
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupons.List(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list coupons", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, coupons)
}

// Create handles POST /coupons (admin only).
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CouponRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.coupons.Create(r.Context(), &domain.Coupon{
		Code:        req.Code,
		Discount:    req.Discount,
		Description: req.Description,
	})
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to create coupon", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

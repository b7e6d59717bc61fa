package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyviewhq/skyview-api/internal/api/shared"
	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/platform/logger"
	"github.com/skyviewhq/skyview-api/internal/service/rental"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// agreementExistsMessage is the sentinel returned when the email already
// holds an agreement record. Like the duplicate-user sentinel it ships
// with a 200 status and a null insertedId.
const agreementExistsMessage = "Already applied an apartment"

// AgreementHandler handles rental agreement API requests.
type AgreementHandler struct {
	agreements store.AgreementStore
	rental     rental.Service
}

// NewAgreementHandler creates a new AgreementHandler with the given
// dependencies.
func NewAgreementHandler(agreements store.AgreementStore, rentalService rental.Service) *AgreementHandler {
	return &AgreementHandler{
		agreements: agreements,
		rental:     rentalService,
	}
}

// List handles GET /agreement (admin view of all applications).
func (h *AgreementHandler) List(w http.ResponseWriter, r *http.Request) {
	agreements, err := h.agreements.List(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list agreements", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, agreements)
}

// GetByEmail handles GET /agreement/{email}. An email with no agreement
// yields a 200 null body rather than a 404.
func (h *AgreementHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	agreement, err := h.agreements.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrAgreementNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
			return
		}
		logger.FromContext(r.Context()).Error("failed to get agreement", "error", err, "email", email)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, agreement)
}

// Apply handles POST /agreement. An email that already holds an agreement
// of any status gets the conflict sentinel.
func (h *AgreementHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req AgreementApplyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	agreement := &domain.Agreement{
		UserName:    req.UserName,
		Email:       req.Email,
		FloorNo:     req.FloorNo,
		BlockName:   req.BlockName,
		ApartmentNo: req.ApartmentNo,
		Rent:        req.Rent,
		ApartmentID: req.ApartmentID,
		RequestDate: req.RequestDate,
	}

	result, err := h.rental.Apply(r.Context(), agreement)
	if err != nil {
		if errors.Is(err, store.ErrAgreementExists) {
			shared.RespondWithJSON(w, r, http.StatusOK, InsertResponse{
				Message:    agreementExistsMessage,
				InsertedID: nil,
			})
			return
		}
		if errors.Is(err, domain.ErrEmptyEmail) || errors.Is(err, domain.ErrInvalidEmail) ||
			errors.Is(err, domain.ErrEmptyApartmentID) {
			shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid agreement data: "+err.Error())
			return
		}
		logger.FromContext(r.Context()).Error("failed to submit agreement", "error", err, "email", req.Email)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Decide handles PATCH /agreement/checking/{id}. The ruling arrives in the
// `check`, `email`, and `apartmentId` query parameters; the body carries
// the decision date.
func (h *AgreementHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	query := r.URL.Query()

	var req DecisionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	decision := rental.Decision{
		AgreementID: id,
		Check:       query.Get("check"),
		Email:       query.Get("email"),
		ApartmentID: query.Get("apartmentId"),
		AcceptDate:  req.CurrentDate,
	}

	result, err := h.rental.Decide(r.Context(), decision)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid agreement id")
			return
		}
		logger.FromContext(r.Context()).Error("failed to decide agreement",
			"error", err, "agreement_id", id, "check", decision.Check)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

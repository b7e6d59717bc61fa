package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyviewhq/skyview-api/internal/api/shared"
	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/platform/logger"
	"github.com/skyviewhq/skyview-api/internal/platform/stripe"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// PaymentGateway is the slice of the payment provider the handler needs.
type PaymentGateway interface {
	// CreatePaymentIntent creates an intent for the price in decimal
	// currency units and returns the client secret.
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

// PaymentHandler handles payment API requests: creating gateway intents,
// recording completed payments, and listing payment history.
type PaymentHandler struct {
	payments store.PaymentStore
	gateway  PaymentGateway
}

// NewPaymentHandler creates a new PaymentHandler with the given dependencies.
func NewPaymentHandler(payments store.PaymentStore, gateway PaymentGateway) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		gateway:  gateway,
	}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	clientSecret, err := h.gateway.CreatePaymentIntent(r.Context(), req.Price)
	if err != nil {
		if errors.Is(err, stripe.ErrInvalidAmount) {
			shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid payment amount")
			return
		}
		logger.FromContext(r.Context()).Error("failed to create payment intent", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}

// ListByEmail handles GET /payments/{email}. An optional `search` query
// parameter narrows the result to months containing it, case-insensitively.
func (h *PaymentHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	search := r.URL.Query().Get("search")

	payments, err := h.payments.ListByEmail(r.Context(), email, search)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list payments", "error", err, "email", email)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, payments)
}

// Create handles POST /payments, recording a completed payment.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.payments.Create(r.Context(), &domain.Payment{
		Email:         req.Email,
		Month:         req.Month,
		Rent:          req.Rent,
		TransactionID: req.TransactionID,
		Date:          req.Date,
	})
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to record payment", "error", err, "email", req.Email)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/mocks"
	"github.com/skyviewhq/skyview-api/internal/platform/stripe"
)

func TestPaymentCreateIntent(t *testing.T) {
	t.Parallel()

	t.Run("returns the gateway client secret", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockPaymentGateway{
			CreatePaymentIntentFn: func(ctx context.Context, price float64) (string, error) {
				return "pi_123_secret_456", nil
			},
		}
		h := NewPaymentHandler(&mocks.MockPaymentStore{}, gateway)

		req := jsonRequest(t, http.MethodPost, "/create-payment-intent", PaymentIntentRequest{Price: 120.50})
		rec := httptest.NewRecorder()
		h.CreateIntent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 120.50, gateway.LastPrice)

		var body PaymentIntentResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "pi_123_secret_456", body.ClientSecret)
	})

	t.Run("zero price fails validation", func(t *testing.T) {
		t.Parallel()
		h := NewPaymentHandler(&mocks.MockPaymentStore{}, &mocks.MockPaymentGateway{})

		req := jsonRequest(t, http.MethodPost, "/create-payment-intent", PaymentIntentRequest{Price: 0})
		rec := httptest.NewRecorder()
		h.CreateIntent(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("gateway amount rejection is a 400", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockPaymentGateway{
			CreatePaymentIntentFn: func(ctx context.Context, price float64) (string, error) {
				return "", stripe.ErrInvalidAmount
			},
		}
		h := NewPaymentHandler(&mocks.MockPaymentStore{}, gateway)

		req := jsonRequest(t, http.MethodPost, "/create-payment-intent", PaymentIntentRequest{Price: 0.001})
		rec := httptest.NewRecorder()
		h.CreateIntent(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("gateway failure is a 500", func(t *testing.T) {
		t.Parallel()
		gateway := &mocks.MockPaymentGateway{
			CreatePaymentIntentFn: func(ctx context.Context, price float64) (string, error) {
				return "", assert.AnError
			},
		}
		h := NewPaymentHandler(&mocks.MockPaymentStore{}, gateway)

		req := jsonRequest(t, http.MethodPost, "/create-payment-intent", PaymentIntentRequest{Price: 99})
		rec := httptest.NewRecorder()
		h.CreateIntent(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPaymentCreate(t *testing.T) {
	t.Parallel()

	t.Run("records the payment", func(t *testing.T) {
		t.Parallel()
		payments := &mocks.MockPaymentStore{}
		h := NewPaymentHandler(payments, &mocks.MockPaymentGateway{})

		req := jsonRequest(t, http.MethodPost, "/payments", PaymentRequest{
			Email:         "member@example.com",
			Month:         "June",
			Rent:          12000,
			TransactionID: "pi_123",
			Date:          "2024-06-05",
		})
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, payments.Payments, 1)
		assert.Equal(t, "member@example.com", payments.Payments[0].Email)
		assert.Equal(t, "June", payments.Payments[0].Month)

		var body struct {
			InsertedID string `json:"insertedId"`
		}
		decodeBody(t, rec, &body)
		assert.NotEmpty(t, body.InsertedID)
	})

	t.Run("missing email fails validation", func(t *testing.T) {
		t.Parallel()
		h := NewPaymentHandler(&mocks.MockPaymentStore{}, &mocks.MockPaymentGateway{})

		req := jsonRequest(t, http.MethodPost, "/payments", PaymentRequest{Month: "June"})
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentListByEmail(t *testing.T) {
	t.Parallel()

	t.Run("passes email and search through", func(t *testing.T) {
		t.Parallel()
		payments := &mocks.MockPaymentStore{}
		var gotEmail, gotSearch string
		payments.ListByEmailFn = func(ctx context.Context, email, monthSearch string) ([]domain.Payment, error) {
			gotEmail, gotSearch = email, monthSearch
			return []domain.Payment{}, nil
		}
		h := NewPaymentHandler(payments, &mocks.MockPaymentGateway{})

		req := httptest.NewRequest(http.MethodGet, "/payments/member@example.com?search=jun", nil)
		req = withURLParam(req, "email", "member@example.com")
		rec := httptest.NewRecorder()
		h.ListByEmail(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "member@example.com", gotEmail)
		assert.Equal(t, "jun", gotSearch)
	})

	t.Run("returns only the caller's payments", func(t *testing.T) {
		t.Parallel()
		payments := &mocks.MockPaymentStore{
			Payments: []domain.Payment{
				{Email: "member@example.com", Month: "June", Rent: 12000},
				{Email: "other@example.com", Month: "June", Rent: 9000},
			},
		}
		h := NewPaymentHandler(payments, &mocks.MockPaymentGateway{})

		req := httptest.NewRequest(http.MethodGet, "/payments/member@example.com", nil)
		req = withURLParam(req, "email", "member@example.com")
		rec := httptest.NewRecorder()
		h.ListByEmail(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body []domain.Payment
		decodeBody(t, rec, &body)
		require.Len(t, body, 1)
		assert.Equal(t, "member@example.com", body[0].Email)
	})
}

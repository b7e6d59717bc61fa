package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/mocks"
	"github.com/skyviewhq/skyview-api/internal/service/rental"
	"github.com/skyviewhq/skyview-api/internal/store"
)

func validApplyRequest() AgreementApplyRequest {
	return AgreementApplyRequest{
		UserName:    "Tenant One",
		Email:       "tenant@example.com",
		FloorNo:     3,
		BlockName:   "B",
		ApartmentNo: "B-301",
		Rent:        12000,
		ApartmentID: primitive.NewObjectID().Hex(),
		RequestDate: "2024-06-01",
	}
}

func TestAgreementApply(t *testing.T) {
	t.Parallel()

	t.Run("submits the application", func(t *testing.T) {
		t.Parallel()
		var captured *domain.Agreement
		rentalSvc := &mocks.MockRentalService{
			ApplyFn: func(ctx context.Context, agreement *domain.Agreement) (store.InsertResult, error) {
				captured = agreement
				return store.InsertResult{InsertedID: primitive.NewObjectID()}, nil
			},
		}
		h := NewAgreementHandler(mocks.NewMockAgreementStore(), rentalSvc)

		req := jsonRequest(t, http.MethodPost, "/agreement", validApplyRequest())
		rec := httptest.NewRecorder()
		h.Apply(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "tenant@example.com", captured.Email)
		assert.Equal(t, "B-301", captured.ApartmentNo)

		var body struct {
			InsertedID string `json:"insertedId"`
		}
		decodeBody(t, rec, &body)
		assert.NotEmpty(t, body.InsertedID)
	})

	t.Run("existing agreement gets the sentinel with a 200", func(t *testing.T) {
		t.Parallel()
		rentalSvc := &mocks.MockRentalService{
			ApplyFn: func(ctx context.Context, agreement *domain.Agreement) (store.InsertResult, error) {
				return store.InsertResult{}, store.ErrAgreementExists
			},
		}
		h := NewAgreementHandler(mocks.NewMockAgreementStore(), rentalSvc)

		req := jsonRequest(t, http.MethodPost, "/agreement", validApplyRequest())
		rec := httptest.NewRecorder()
		h.Apply(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		decodeBody(t, rec, &body)
		assert.Equal(t, "Already applied an apartment", body["message"])
		assert.Nil(t, body["insertedId"])
	})

	t.Run("missing apartment id is a 400", func(t *testing.T) {
		t.Parallel()
		h := NewAgreementHandler(mocks.NewMockAgreementStore(), &mocks.MockRentalService{})

		invalid := validApplyRequest()
		invalid.ApartmentID = ""
		req := jsonRequest(t, http.MethodPost, "/agreement", invalid)
		rec := httptest.NewRecorder()
		h.Apply(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAgreementGetByEmail(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored agreement", func(t *testing.T) {
		t.Parallel()
		agreements := mocks.NewMockAgreementStore()
		agreements.Agreements["tenant@example.com"] = &domain.Agreement{
			ID:          primitive.NewObjectID(),
			Email:       "tenant@example.com",
			ApartmentID: primitive.NewObjectID().Hex(),
			Status:      domain.AgreementPending,
		}
		h := NewAgreementHandler(agreements, &mocks.MockRentalService{})

		req := httptest.NewRequest(http.MethodGet, "/agreement/tenant@example.com", nil)
		req = withURLParam(req, "email", "tenant@example.com")
		rec := httptest.NewRecorder()
		h.GetByEmail(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body domain.Agreement
		decodeBody(t, rec, &body)
		assert.Equal(t, domain.AgreementPending, body.Status)
	})

	t.Run("no agreement yields a 200 null body", func(t *testing.T) {
		t.Parallel()
		h := NewAgreementHandler(mocks.NewMockAgreementStore(), &mocks.MockRentalService{})

		req := httptest.NewRequest(http.MethodGet, "/agreement/ghost@example.com", nil)
		req = withURLParam(req, "email", "ghost@example.com")
		rec := httptest.NewRecorder()
		h.GetByEmail(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null\n", rec.Body.String())
	})
}

func TestAgreementList(t *testing.T) {
	t.Parallel()

	agreements := mocks.NewMockAgreementStore()
	agreements.Agreements["tenant@example.com"] = &domain.Agreement{
		ID:    primitive.NewObjectID(),
		Email: "tenant@example.com",
	}
	h := NewAgreementHandler(agreements, &mocks.MockRentalService{})

	req := httptest.NewRequest(http.MethodGet, "/agreement", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []domain.Agreement
	decodeBody(t, rec, &body)
	assert.Len(t, body, 1)
}

func TestAgreementDecide(t *testing.T) {
	t.Parallel()

	t.Run("builds the decision from path, query, and body", func(t *testing.T) {
		t.Parallel()
		rentalSvc := &mocks.MockRentalService{}
		h := NewAgreementHandler(mocks.NewMockAgreementStore(), rentalSvc)

		agreementID := primitive.NewObjectID().Hex()
		apartmentID := primitive.NewObjectID().Hex()
		target := "/agreement/checking/" + agreementID +
			"?check=approve&email=tenant@example.com&apartmentId=" + apartmentID

		req := jsonRequest(t, http.MethodPatch, target, DecisionRequest{CurrentDate: "2024-06-02"})
		req = withURLParam(req, "id", agreementID)
		rec := httptest.NewRecorder()
		h.Decide(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, agreementID, rentalSvc.LastDecision.AgreementID)
		assert.Equal(t, "approve", rentalSvc.LastDecision.Check)
		assert.Equal(t, "tenant@example.com", rentalSvc.LastDecision.Email)
		assert.Equal(t, apartmentID, rentalSvc.LastDecision.ApartmentID)
		assert.Equal(t, "2024-06-02", rentalSvc.LastDecision.AcceptDate)
	})

	t.Run("invalid agreement id is a 400", func(t *testing.T) {
		t.Parallel()
		rentalSvc := &mocks.MockRentalService{
			DecideFn: func(ctx context.Context, decision rental.Decision) (store.UpdateResult, error) {
				return store.UpdateResult{}, store.ErrInvalidID
			},
		}
		h := NewAgreementHandler(mocks.NewMockAgreementStore(), rentalSvc)

		req := jsonRequest(t, http.MethodPatch, "/agreement/checking/not-hex?check=approve", DecisionRequest{})
		req = withURLParam(req, "id", "not-hex")
		rec := httptest.NewRecorder()
		h.Decide(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

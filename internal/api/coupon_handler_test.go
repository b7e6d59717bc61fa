package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/mocks"
)

func TestCouponCreate(t *testing.T) {
	t.Parallel()

	t.Run("stores the coupon", func(t *testing.T) {
		t.Parallel()
		coupons := &mocks.MockCouponStore{}
		h := NewCouponHandler(coupons)

		req := jsonRequest(t, http.MethodPost, "/coupons", CouponRequest{
			Code:        "SUMMER20",
			Discount:    20,
			Description: "20% off the first month",
		})
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, coupons.Coupons, 1)
		assert.Equal(t, "SUMMER20", coupons.Coupons[0].Code)
		assert.Equal(t, 20, coupons.Coupons[0].Discount)
	})

	t.Run("discount above 100 fails validation", func(t *testing.T) {
		t.Parallel()
		h := NewCouponHandler(&mocks.MockCouponStore{})

		req := jsonRequest(t, http.MethodPost, "/coupons", CouponRequest{
			Code:     "TOOMUCH",
			Discount: 150,
		})
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing code fails validation", func(t *testing.T) {
		t.Parallel()
		h := NewCouponHandler(&mocks.MockCouponStore{})

		req := jsonRequest(t, http.MethodPost, "/coupons", CouponRequest{Discount: 10})
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCouponList(t *testing.T) {
	t.Parallel()

	coupons := &mocks.MockCouponStore{
		Coupons: []domain.Coupon{
			{Code: "SUMMER20", Discount: 20},
		},
	}
	h := NewCouponHandler(coupons)

	req := httptest.NewRequest(http.MethodGet, "/coupons", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []domain.Coupon
	decodeBody(t, rec, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "SUMMER20", body[0].Code)
}

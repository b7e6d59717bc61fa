package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyviewhq/skyview-api/internal/service/auth"
)

func TestTokenIssue(t *testing.T) {
	t.Parallel()

	svc := auth.NewTestTokenService("test-jwt-secret-thirty-two-chars-ok", time.Hour, time.Now)
	h := NewTokenHandler(svc)

	t.Run("signs the posted claims", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(t, http.MethodPost, "/jwt", map[string]interface{}{
			"email": "tenant@example.com",
		})
		rec := httptest.NewRecorder()
		h.Issue(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body TokenResponse
		decodeBody(t, rec, &body)
		require.NotEmpty(t, body.Token)
		assert.Equal(t, 3, len(strings.Split(body.Token, ".")), "expected a compact JWS")

		claims, err := svc.Verify(req.Context(), body.Token)
		require.NoError(t, err)
		assert.Equal(t, "tenant@example.com", claims.Email)
	})

	t.Run("claims without an email are a 400", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(t, http.MethodPost, "/jwt", map[string]interface{}{
			"name": "no email here",
		})
		rec := httptest.NewRecorder()
		h.Issue(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		h.Issue(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

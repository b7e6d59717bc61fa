package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyviewhq/skyview-api/internal/api/shared"
	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/mocks"
	"github.com/skyviewhq/skyview-api/internal/service/auth"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// okHandler records whether the chain reached it and what email the
// context carried.
type okHandler struct {
	called bool
	email  string
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.email, _ = shared.GetClaimsEmail(r.Context())
	w.WriteHeader(http.StatusOK)
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body shared.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	t.Run("missing header is a 401 with the gate body", func(t *testing.T) {
		t.Parallel()
		m := NewAuthMiddleware(&mocks.MockTokenService{}, mocks.NewMockUserStore())
		next := &okHandler{}

		req := httptest.NewRequest(http.MethodGet, "/announcement", nil)
		rec := httptest.NewRecorder()
		m.RequireAuth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Forbidden access", decodeMessage(t, rec))
		assert.False(t, next.called)
	})

	t.Run("invalid token is a 401 with the same body", func(t *testing.T) {
		t.Parallel()
		tokens := &mocks.MockTokenService{
			VerifyFn: func(ctx context.Context, token string) (*auth.Claims, error) {
				return nil, auth.ErrInvalidToken
			},
		}
		m := NewAuthMiddleware(tokens, mocks.NewMockUserStore())
		next := &okHandler{}

		req := httptest.NewRequest(http.MethodGet, "/announcement", nil)
		req.Header.Set("Authorization", "garbage")
		rec := httptest.NewRecorder()
		m.RequireAuth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Forbidden access", decodeMessage(t, rec))
		assert.False(t, next.called)
	})

	t.Run("expired token is a 401", func(t *testing.T) {
		t.Parallel()
		tokens := &mocks.MockTokenService{
			VerifyFn: func(ctx context.Context, token string) (*auth.Claims, error) {
				return nil, auth.ErrExpiredToken
			},
		}
		m := NewAuthMiddleware(tokens, mocks.NewMockUserStore())
		next := &okHandler{}

		req := httptest.NewRequest(http.MethodGet, "/announcement", nil)
		req.Header.Set("Authorization", "stale")
		rec := httptest.NewRecorder()
		m.RequireAuth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, next.called)
	})

	t.Run("raw token passes and the email lands in context", func(t *testing.T) {
		t.Parallel()
		tokens := &mocks.MockTokenService{
			VerifyFn: func(ctx context.Context, token string) (*auth.Claims, error) {
				// The header carries the raw token, no Bearer prefix.
				assert.Equal(t, "raw-session-token", token)
				return &auth.Claims{Email: "tenant@example.com"}, nil
			},
		}
		m := NewAuthMiddleware(tokens, mocks.NewMockUserStore())
		next := &okHandler{}

		req := httptest.NewRequest(http.MethodGet, "/announcement", nil)
		req.Header.Set("Authorization", "raw-session-token")
		rec := httptest.NewRecorder()
		m.RequireAuth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, next.called)
		assert.Equal(t, "tenant@example.com", next.email)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	newRequest := func(email string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/members", nil)
		if email != "" {
			req = req.WithContext(shared.SetClaimsEmail(req.Context(), email))
		}
		return req
	}

	t.Run("missing context email is a 403", func(t *testing.T) {
		t.Parallel()
		m := NewAuthMiddleware(&mocks.MockTokenService{}, mocks.NewMockUserStore())
		next := &okHandler{}

		rec := httptest.NewRecorder()
		m.RequireAdmin(next).ServeHTTP(rec, newRequest(""))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Forbidden access", decodeMessage(t, rec))
		assert.False(t, next.called)
	})

	t.Run("unknown user is a 403", func(t *testing.T) {
		t.Parallel()
		m := NewAuthMiddleware(&mocks.MockTokenService{}, mocks.NewMockUserStore())
		next := &okHandler{}

		rec := httptest.NewRecorder()
		m.RequireAdmin(next).ServeHTTP(rec, newRequest("ghost@example.com"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, next.called)
	})

	t.Run("member role is a 403", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		users.Users["member@example.com"] = &domain.User{
			Email: "member@example.com",
			Role:  domain.RoleMember,
		}
		m := NewAuthMiddleware(&mocks.MockTokenService{}, users)
		next := &okHandler{}

		rec := httptest.NewRecorder()
		m.RequireAdmin(next).ServeHTTP(rec, newRequest("member@example.com"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Forbidden access", decodeMessage(t, rec))
		assert.False(t, next.called)
	})

	t.Run("store failure is a 403, not a 500", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			return nil, store.ErrNotFound
		}
		m := NewAuthMiddleware(&mocks.MockTokenService{}, users)
		next := &okHandler{}

		rec := httptest.NewRecorder()
		m.RequireAdmin(next).ServeHTTP(rec, newRequest("admin@example.com"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, next.called)
	})

	t.Run("admin role passes", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		users.Users["admin@example.com"] = &domain.User{
			Email: "admin@example.com",
			Role:  domain.RoleAdmin,
		}
		m := NewAuthMiddleware(&mocks.MockTokenService{}, users)
		next := &okHandler{}

		rec := httptest.NewRecorder()
		m.RequireAdmin(next).ServeHTTP(rec, newRequest("admin@example.com"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, next.called)
	})
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/skyviewhq/skyview-api/internal/api/shared"
	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/platform/logger"
	"github.com/skyviewhq/skyview-api/internal/service/auth"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// Gate messages are part of the wire contract; clients match on them.
const (
	forbiddenAccessMessage = "Forbidden access"
)

// AuthMiddleware provides the authentication and authorization gates for
// routes: token verification and, for admin routes, a stored-role check.
type AuthMiddleware struct {
	tokens auth.TokenService
	users  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService, users store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// RequireAuth verifies the session token and stores the claims email in
// the request context. The Authorization header carries the raw token with
// no Bearer prefix; any verification failure is a 401 with the
// "Forbidden access" body.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			shared.RespondWithMessage(w, r, http.StatusUnauthorized, forbiddenAccessMessage)
			return
		}

		claims, err := m.tokens.Verify(r.Context(), token)
		if err != nil {
			log := logger.FromContext(r.Context())
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				log.Debug("rejected expired token", "path", r.URL.Path)
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
				log.Debug("rejected invalid token", "path", r.URL.Path)
			default:
				log.Error("failed to verify token", "error", err)
			}
			// Every verification failure maps onto the same 401 body.
			shared.RespondWithMessage(w, r, http.StatusUnauthorized, forbiddenAccessMessage)
			return
		}

		ctx := shared.SetClaimsEmail(r.Context(), claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin looks up the caller's user record by the context email and
// rejects the request with a 403 unless the stored role is admin. It must
// run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := shared.GetClaimsEmail(r.Context())
		if !ok {
			shared.RespondWithMessage(w, r, http.StatusForbidden, forbiddenAccessMessage)
			return
		}

		user, err := m.users.GetByEmail(r.Context(), email)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				logger.FromContext(r.Context()).Error("failed to look up user for admin gate",
					"error", err, "email", email)
			}
			shared.RespondWithMessage(w, r, http.StatusForbidden, forbiddenAccessMessage)
			return
		}

		if user.Role != domain.RoleAdmin {
			shared.RespondWithMessage(w, r, http.StatusForbidden, forbiddenAccessMessage)
			return
		}

		next.ServeHTTP(w, r)
	})
}

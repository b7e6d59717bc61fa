package api

import (
	"errors"
	"net/http"

	"github.com/skyviewhq/skyview-api/internal/api/shared"
	"github.com/skyviewhq/skyview-api/internal/platform/logger"
	"github.com/skyviewhq/skyview-api/internal/service/auth"
)

// TokenHandler handles the token issue endpoint.
type TokenHandler struct {
	tokens auth.TokenService
}

// NewTokenHandler creates a new TokenHandler with the given dependencies.
func NewTokenHandler(tokens auth.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles POST /jwt. The request body is an arbitrary claims object
// that must contain an email; it is signed as-is with a fixed expiry.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var claims map[string]interface{}
	if err := shared.DecodeJSON(r, &claims); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := h.tokens.Issue(r.Context(), claims)
	if err != nil {
		if errors.Is(err, auth.ErrMissingEmailClaim) {
			shared.RespondWithMessage(w, r, http.StatusBadRequest, "Claims must include an email")
			return
		}
		logger.FromContext(r.Context()).Error("failed to issue token", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

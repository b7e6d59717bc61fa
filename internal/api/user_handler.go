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

// userExistsMessage is the sentinel returned for a duplicate registration.
// It ships with a 200 status and a null insertedId, not an error status.
const userExistsMessage = "User already exist"

// UserHandler handles user-related API requests: registration, listings,
// role lookup, and move-out.
type UserHandler struct {
	users  store.UserStore
	rental rental.Service
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(users store.UserStore, rentalService rental.Service) *UserHandler {
	return &UserHandler{
		users:  users,
		rental: rentalService,
	}
}

// Register handles POST /users. A duplicate email yields the sentinel
// body instead of an error status.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := domain.NewUser(req.Name, req.Email)
	if err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	result, err := h.users.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithJSON(w, r, http.StatusOK, InsertResponse{
				Message:    userExistsMessage,
				InsertedID: nil,
			})
			return
		}
		logger.FromContext(r.Context()).Error("failed to create user", "error", err, "email", req.Email)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list users", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// ListMembers handles GET /members: the users currently holding a tenancy.
func (h *UserHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.users.ListByRole(r.Context(), domain.RoleMember)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list members", "error", err)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, members)
}

// MoveOut handles PATCH /users/{email}: frees the apartment referenced by
// the email's agreement (if any) and clears the stored role either way.
func (h *UserHandler) MoveOut(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	result, err := h.rental.MoveOut(r.Context(), email)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to process move-out", "error", err, "email", email)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetRole handles GET /users/role/{email}. The caller may only read their
// own role: a path email different from the token email is a 403 with the
// "Unauthorized access" body (distinct from the auth gate's wording, and
// kept that way).
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	claimsEmail, ok := shared.GetClaimsEmail(r.Context())
	if !ok || claimsEmail != email {
		shared.RespondWithMessage(w, r, http.StatusForbidden, "Unauthorized access")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Unknown users read as roleless rather than 404.
			shared.RespondWithJSON(w, r, http.StatusOK, RoleResponse{UserRole: ""})
			return
		}
		logger.FromContext(r.Context()).Error("failed to get user role", "error", err, "email", email)
		shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RoleResponse{
		UserRole: string(domain.ParseRole(string(user.Role))),
	})
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/gpe-labs/payroll-backend-go/internal/domain/user"
	"github.com/gpe-labs/payroll-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// ListUsers implements UserHandler
func (h *userHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	results, err := h.userService.GetAll(r.Context())
	if err != nil {
		slog.Error("ListUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetUser implements UserHandler
func (h *userHandlerImpl) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateUser implements UserHandler
func (h *userHandlerImpl) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("User updated", "id", id)
	response.Success(w, result)
}

// DeleteUser implements UserHandler. Admins cannot delete their own
// account while authenticated with it.
func (h *userHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, claims, err := jwtauth.FromContext(r.Context())
	if err == nil {
		if callerID, ok := claims["user_id"].(string); ok && callerID == id {
			response.HandleError(w, user.ErrCannotDeleteSelf)
			return
		}
	}

	deleted, err := h.userService.Delete(r.Context(), id)
	if err != nil {
		slog.Error("DeleteUser service error", "error", err)
		response.HandleError(w, err)
		return
	}
	if !deleted {
		response.NotFound(w, "User not found")
		return
	}

	slog.Info("User deleted", "id", id)
	response.NoContent(w)
}

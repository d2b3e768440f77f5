package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/personality-board/internal/platform/api"
	"github.com/example/personality-board/internal/store"
)

type createUserRequest struct {
	Name string `json:"name"`
}

// CreateUser handles POST /v1/users
func CreateUser(us store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "invalid JSON", "", nil)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			api.BadRequest(w, "EMPTY_NAME", "name must not be empty", "", nil)
			return
		}

		u, err := us.Create(r.Context(), req.Name)
		if err != nil {
			if errors.Is(err, store.ErrUserExists) {
				api.Conflict(w, "USER_EXISTS", "User already exists", "", nil)
				return
			}
			api.Internal(w, "")
			return
		}
		api.WriteJSON(w, http.StatusCreated, u)
	}
}

// ListUsers handles GET /v1/users
func ListUsers(us store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := us.List(r.Context())
		if err != nil {
			api.Internal(w, "")
			return
		}
		if len(users) == 0 {
			api.NotFound(w, "NO_USERS", "No Users found", "")
			return
		}
		api.WriteJSON(w, http.StatusOK, users)
	}
}

// GetUser handles GET /v1/users/{user_id}
func GetUser(us store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(chi.URLParam(r, "user_id"))
		if userID == "" {
			api.BadRequest(w, "MISSING_ID", "user_id is required", "", nil)
			return
		}

		u, err := us.Get(r.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				api.NotFound(w, "USER_NOT_FOUND", "User not found", "")
				return
			}
			api.Internal(w, "")
			return
		}
		api.WriteJSON(w, http.StatusOK, u)
	}
}

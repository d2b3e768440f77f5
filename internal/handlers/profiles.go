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

type createProfileRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MBTI        string `json:"mbti"`
	Enneagram   string `json:"enneagram"`
	Variant     string `json:"variant"`
	Tritype     string `json:"tritype"`
	Socionics   string `json:"socionics"`
	Sloan       string `json:"sloan"`
	Psyche      string `json:"psyche"`
	Image       string `json:"image"`
}

// CreateProfile handles POST /v1/profiles
func CreateProfile(ps store.ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProfileRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "invalid JSON", "", nil)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			api.BadRequest(w, "EMPTY_NAME", "name must not be empty", "", nil)
			return
		}

		p, err := ps.Create(r.Context(), store.Profile{
			Name:        req.Name,
			Description: req.Description,
			MBTI:        req.MBTI,
			Enneagram:   req.Enneagram,
			Variant:     req.Variant,
			Tritype:     req.Tritype,
			Socionics:   req.Socionics,
			Sloan:       req.Sloan,
			Psyche:      req.Psyche,
			Image:       req.Image,
		})
		if err != nil {
			if errors.Is(err, store.ErrProfileExists) {
				api.Conflict(w, "PROFILE_EXISTS", "Profile already exists", "", nil)
				return
			}
			api.Internal(w, "")
			return
		}
		api.WriteJSON(w, http.StatusCreated, p)
	}
}

// ListProfiles handles GET /v1/profiles
func ListProfiles(ps store.ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := ps.List(r.Context())
		if err != nil {
			api.Internal(w, "")
			return
		}
		if len(profiles) == 0 {
			api.NotFound(w, "NO_PROFILES", "No Profiles found", "")
			return
		}
		api.WriteJSON(w, http.StatusOK, profiles)
	}
}

// GetProfile handles GET /v1/profiles/{profile_id}
func GetProfile(ps store.ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := strings.TrimSpace(chi.URLParam(r, "profile_id"))
		if profileID == "" {
			api.BadRequest(w, "MISSING_ID", "profile_id is required", "", nil)
			return
		}

		p, err := ps.Get(r.Context(), profileID)
		if err != nil {
			if errors.Is(err, store.ErrProfileNotFound) {
				api.NotFound(w, "PROFILE_NOT_FOUND", "Profile not found", "")
				return
			}
			api.Internal(w, "")
			return
		}
		api.WriteJSON(w, http.StatusOK, p)
	}
}

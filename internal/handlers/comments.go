package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/personality-board/internal/comments"
	"github.com/example/personality-board/internal/platform/api"
	"github.com/example/personality-board/internal/store"
)

type createCommentRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	VoteMBTI      string `json:"voteMBTI"`
	VoteEnneagram string `json:"voteEnneagram"`
	VoteZodiac    string `json:"voteZodiac"`
	UserID        string `json:"userId"`
	ProfileID     string `json:"profileId"`
}

type voteRequest struct {
	UserID string `json:"userId"`
}

// CreateComment handles POST /v1/comments
func CreateComment(svc *comments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCommentRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "invalid JSON", "", nil)
			return
		}

		created, err := svc.Create(r.Context(), comments.CreateInput{
			Title:         req.Title,
			Description:   req.Description,
			VoteMBTI:      req.VoteMBTI,
			VoteEnneagram: req.VoteEnneagram,
			VoteZodiac:    req.VoteZodiac,
			UserID:        req.UserID,
			ProfileID:     req.ProfileID,
		})
		if err != nil {
			writeCommentError(w, err)
			return
		}
		api.WriteJSON(w, http.StatusCreated, created)
	}
}

// ListComments handles GET /v1/comments?sort=&filter=
func ListComments(svc *comments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sortBy := strings.TrimSpace(r.URL.Query().Get("sort"))
		filter := strings.TrimSpace(r.URL.Query().Get("filter"))

		out, err := svc.List(r.Context(), sortBy, filter)
		if err != nil {
			writeCommentError(w, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, out)
	}
}

// ListProfileComments handles GET /v1/profiles/{profile_id}/comments?sort=&filter=
func ListProfileComments(svc *comments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := strings.TrimSpace(chi.URLParam(r, "profile_id"))
		if profileID == "" {
			api.BadRequest(w, "MISSING_ID", "profile_id is required", "", nil)
			return
		}

		sortBy := strings.TrimSpace(r.URL.Query().Get("sort"))
		filter := strings.TrimSpace(r.URL.Query().Get("filter"))

		out, err := svc.ListForProfile(r.Context(), profileID, sortBy, filter)
		if err != nil {
			writeCommentError(w, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, out)
	}
}

// VoteComment handles POST /v1/comments/{comment_id}/like?like=<flag>
func VoteComment(svc *comments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID := strings.TrimSpace(chi.URLParam(r, "comment_id"))
		if commentID == "" {
			api.BadRequest(w, "MISSING_ID", "comment_id is required", "", nil)
			return
		}

		var req voteRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "invalid JSON", "", nil)
			return
		}

		flag := strings.TrimSpace(r.URL.Query().Get("like"))

		updated, err := svc.Vote(r.Context(), req.UserID, commentID, flag)
		if err != nil {
			writeCommentError(w, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, updated)
	}
}

func writeCommentError(w http.ResponseWriter, err error) {
	var ve *comments.ValidationError
	switch {
	case errors.As(err, &ve):
		api.BadRequest(w, "VALIDATION", ve.Error(), "", map[string]any{"field": ve.Field})
	case errors.Is(err, comments.ErrInvalidUser):
		api.NotFound(w, "INVALID_USER", "Invalid User", "")
	case errors.Is(err, comments.ErrInvalidProfile):
		api.NotFound(w, "INVALID_PROFILE", "Invalid Profile", "")
	case errors.Is(err, comments.ErrNoComments):
		api.NotFound(w, "NO_COMMENTS", "No Comments found", "")
	case errors.Is(err, store.ErrCommentNotFound):
		api.NotFound(w, "COMMENT_NOT_FOUND", "Invalid Comment", "")
	case errors.Is(err, store.ErrAlreadyLiked):
		api.Conflict(w, "ALREADY_LIKED", "Comment already liked by the user", "", nil)
	case errors.Is(err, store.ErrAlreadyUnliked):
		api.Conflict(w, "ALREADY_UNLIKED", "Comment already unliked by the user", "", nil)
	default:
		api.Internal(w, "")
	}
}

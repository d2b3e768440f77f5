// Package comments implements the comment subsystem: creation with
// cross-entity reference validation, sorted and filtered listings, and the
// per-user like/unlike transition logic.
package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/example/personality-board/internal/store"
)

// UserDirectory answers whether a user id refers to an existing user.
type UserDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// ProfileDirectory answers whether a profile id refers to an existing profile.
type ProfileDirectory interface {
	Exists(ctx context.Context, profileID string) (bool, error)
}

// EventPublisher receives best-effort notifications about created comments.
type EventPublisher interface {
	CommentCreated(ctx context.Context, c store.Comment)
}

// Sentinel errors
var (
	ErrInvalidUser    = errors.New("invalid user")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrNoComments     = errors.New("no comments found")
)

// ValidationError reports a caller contract violation: a missing required
// field or a vote value outside its enumeration.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Service owns all comment reads and writes. References are validated at
// write time only; reads do not re-check them.
type Service struct {
	comments store.CommentStore
	users    UserDirectory
	profiles ProfileDirectory
	events   EventPublisher
	log      *zap.Logger
}

// New wires the comment service. events may be nil when no broker is
// configured; log may be nil.
func New(comments store.CommentStore, users UserDirectory, profiles ProfileDirectory, events EventPublisher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{comments: comments, users: users, profiles: profiles, events: events, log: log}
}

// CreateInput carries the caller-supplied fields of a new comment.
// Vote fields default to the empty string, meaning no vote.
type CreateInput struct {
	Title         string
	Description   string
	VoteMBTI      string
	VoteEnneagram string
	VoteZodiac    string
	UserID        string
	ProfileID     string
}

// Create validates the input and both entity references, then persists the
// comment with zero likes. A comment is never persisted unless both
// references are valid at the time of the call.
func (s *Service) Create(ctx context.Context, in CreateInput) (store.Comment, error) {
	if err := validateCreate(in); err != nil {
		return store.Comment{}, err
	}

	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return store.Comment{}, fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return store.Comment{}, ErrInvalidUser
	}

	ok, err = s.profiles.Exists(ctx, in.ProfileID)
	if err != nil {
		return store.Comment{}, fmt.Errorf("check profile: %w", err)
	}
	if !ok {
		return store.Comment{}, ErrInvalidProfile
	}

	created, err := s.comments.Create(ctx, store.Comment{
		Title:         in.Title,
		Description:   in.Description,
		VoteMBTI:      in.VoteMBTI,
		VoteEnneagram: in.VoteEnneagram,
		VoteZodiac:    in.VoteZodiac,
		UserID:        in.UserID,
		ProfileID:     in.ProfileID,
	})
	if err != nil {
		return store.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	if s.events != nil {
		s.events.CommentCreated(ctx, created)
	}

	s.log.Info("comment created",
		zap.String("comment_id", created.ID),
		zap.String("profile_id", created.ProfileID))
	return created, nil
}

// List returns all comments, ordered by the sort criterion and filtered by
// personality system. An empty result is reported as ErrNoComments.
func (s *Service) List(ctx context.Context, sortBy, filter string) ([]store.Comment, error) {
	out, err := s.comments.List(ctx, store.CommentQuery{Sort: sortBy})
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out = filterBySystem(out, filter)
	if len(out) == 0 {
		return nil, ErrNoComments
	}
	return out, nil
}

// ListForProfile returns the comments of a single profile, with the
// commenting user omitted from every record.
func (s *Service) ListForProfile(ctx context.Context, profileID, sortBy, filter string) ([]store.Comment, error) {
	out, err := s.comments.List(ctx, store.CommentQuery{ProfileID: profileID, Sort: sortBy})
	if err != nil {
		return nil, fmt.Errorf("list profile comments: %w", err)
	}

	out = filterBySystem(out, filter)
	if len(out) == 0 {
		return nil, ErrNoComments
	}
	for i := range out {
		out[i].UserID = ""
	}
	return out, nil
}

// Vote applies one like/unlike transition for the (comment, user) pair.
// The flag is interpreted as "1"/"true" to like and "0"/"false" to unlike;
// any other value takes neither branch and only requires the comment to
// exist, returning it unchanged.
//
// Liking an already-liked comment fails with ErrAlreadyLiked; unliking a
// never-liked comment fails with ErrAlreadyUnliked. Membership is tested
// directly against the identified comment's likedBy set.
func (s *Service) Vote(ctx context.Context, userID, commentID, flag string) (store.Comment, error) {
	if strings.TrimSpace(userID) == "" {
		return store.Comment{}, &ValidationError{Field: "userId", Reason: "is required"}
	}

	switch flag {
	case "1", "true":
		return s.comments.Like(ctx, commentID, userID)
	case "0", "false":
		return s.comments.Unlike(ctx, commentID, userID)
	default:
		return s.comments.Get(ctx, commentID)
	}
}

func validateCreate(in CreateInput) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return &ValidationError{Field: "title", Reason: "is required"}
	case strings.TrimSpace(in.Description) == "":
		return &ValidationError{Field: "description", Reason: "is required"}
	case strings.TrimSpace(in.UserID) == "":
		return &ValidationError{Field: "userId", Reason: "is required"}
	case strings.TrimSpace(in.ProfileID) == "":
		return &ValidationError{Field: "profileId", Reason: "is required"}
	case !store.ValidVoteMBTI(in.VoteMBTI):
		return &ValidationError{Field: "voteMBTI", Reason: "is not a valid MBTI type"}
	case !store.ValidVoteEnneagram(in.VoteEnneagram):
		return &ValidationError{Field: "voteEnneagram", Reason: "is not a valid Enneagram wing"}
	case !store.ValidVoteZodiac(in.VoteZodiac):
		return &ValidationError{Field: "voteZodiac", Reason: "is not a valid zodiac sign"}
	}
	return nil
}

// filterBySystem keeps comments whose vote field for the given system is
// non-empty. It runs after sorting and does not affect the sort key.
func filterBySystem(comments []store.Comment, filter string) []store.Comment {
	var vote func(store.Comment) string
	switch filter {
	case store.FilterMBTI:
		vote = func(c store.Comment) string { return c.VoteMBTI }
	case store.FilterEnneagram:
		vote = func(c store.Comment) string { return c.VoteEnneagram }
	case store.FilterZodiac:
		vote = func(c store.Comment) string { return c.VoteZodiac }
	default:
		return comments
	}

	out := make([]store.Comment, 0, len(comments))
	for _, c := range comments {
		if vote(c) != "" {
			out = append(out, c)
		}
	}
	return out
}

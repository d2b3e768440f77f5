package store

import (
	"context"
	"errors"
	"time"
)

// Sort criteria accepted by comment listings.
const (
	SortBest   = "best"   // most liked first
	SortRecent = "recent" // newest first
)

// Personality system filters accepted by comment listings.
const (
	FilterMBTI      = "MBTI"
	FilterEnneagram = "Enneagram"
	FilterZodiac    = "Zodiac"
)

// Comment is a titled text entry attached to one user and one profile,
// optionally carrying one vote per personality system. The empty string in a
// vote field means no vote was cast on that system.
type Comment struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	VoteMBTI      string    `json:"voteMBTI"`
	VoteEnneagram string    `json:"voteEnneagram"`
	VoteZodiac    string    `json:"voteZodiac"`
	Date          time.Time `json:"date"`
	Likes         int       `json:"likes"`
	LikedBy       []string  `json:"likedBy"`
	UserID        string    `json:"user,omitempty"`
	ProfileID     string    `json:"profile"`
}

// CommentQuery scopes and orders a comment listing.
type CommentQuery struct {
	ProfileID string // restrict to one profile when non-empty
	Sort      string // SortBest, SortRecent; anything else keeps storage order
}

// CommentStore defines the contract for comment persistence.
// Like and Unlike mutate the likes counter and the likedBy set together;
// implementations must serialize writes per comment so that
// likes == len(likedBy) holds after every successful transition.
type CommentStore interface {
	Create(ctx context.Context, c Comment) (Comment, error)
	Get(ctx context.Context, commentID string) (Comment, error)
	List(ctx context.Context, q CommentQuery) ([]Comment, error)
	Like(ctx context.Context, commentID, userID string) (Comment, error)
	Unlike(ctx context.Context, commentID, userID string) (Comment, error)
}

// Sentinel errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyLiked    = errors.New("comment already liked by the user")
	ErrAlreadyUnliked  = errors.New("comment already unliked by the user")
)

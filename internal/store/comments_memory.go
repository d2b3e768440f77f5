package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryCommentStore is a development-only in-memory implementation.
// The order slice preserves insertion order, which is the store's natural
// listing order.
type InMemoryCommentStore struct {
	mu       sync.RWMutex
	comments map[string]Comment
	order    []string
}

func NewInMemoryCommentStore() *InMemoryCommentStore {
	return &InMemoryCommentStore{comments: make(map[string]Comment)}
}

func (s *InMemoryCommentStore) Create(_ context.Context, c Comment) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	c.Date = time.Now().UTC()
	c.Likes = 0
	c.LikedBy = []string{}
	s.comments[c.ID] = c
	s.order = append(s.order, c.ID)
	return cloneComment(c), nil
}

func (s *InMemoryCommentStore) Get(_ context.Context, commentID string) (Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[commentID]
	if !ok {
		return Comment{}, ErrCommentNotFound
	}
	return cloneComment(c), nil
}

func (s *InMemoryCommentStore) List(_ context.Context, q CommentQuery) ([]Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Comment, 0, len(s.order))
	for _, id := range s.order {
		c := s.comments[id]
		if q.ProfileID != "" && c.ProfileID != q.ProfileID {
			continue
		}
		out = append(out, cloneComment(c))
	}

	// Stable sorts keep insertion order among ties.
	switch q.Sort {
	case SortBest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Likes > out[j].Likes
		})
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	}
	return out, nil
}

func (s *InMemoryCommentStore) Like(_ context.Context, commentID, userID string) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return Comment{}, ErrCommentNotFound
	}
	if containsUser(c.LikedBy, userID) {
		return Comment{}, ErrAlreadyLiked
	}

	c.Likes++
	c.LikedBy = append(append([]string(nil), c.LikedBy...), userID)
	s.comments[commentID] = c
	return cloneComment(c), nil
}

func (s *InMemoryCommentStore) Unlike(_ context.Context, commentID, userID string) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return Comment{}, ErrCommentNotFound
	}
	if !containsUser(c.LikedBy, userID) {
		return Comment{}, ErrAlreadyUnliked
	}

	c.Likes--
	kept := make([]string, 0, len(c.LikedBy)-1)
	for _, u := range c.LikedBy {
		if u != userID {
			kept = append(kept, u)
		}
	}
	c.LikedBy = kept
	s.comments[commentID] = c
	return cloneComment(c), nil
}

func containsUser(users []string, userID string) bool {
	for _, u := range users {
		if u == userID {
			return true
		}
	}
	return false
}

// cloneComment copies the likedBy slice so callers cannot alias store state.
func cloneComment(c Comment) Comment {
	c.LikedBy = append([]string{}, c.LikedBy...)
	return c
}

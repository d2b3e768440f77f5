package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryUserStore is a development-only in-memory implementation.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]User
	order []string
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[string]User)}
}

func (s *InMemoryUserStore) Create(_ context.Context, name string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Name == name {
			return User{}, ErrUserExists
		}
	}

	u := User{ID: uuid.NewString(), Name: name}
	s.users[u.ID] = u
	s.order = append(s.order, u.ID)
	return u, nil
}

func (s *InMemoryUserStore) Get(_ context.Context, userID string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *InMemoryUserStore) List(_ context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.users[id])
	}
	return out, nil
}

func (s *InMemoryUserStore) Exists(_ context.Context, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]
	return ok, nil
}

package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryProfileStore is a development-only in-memory implementation.
type InMemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	order    []string
}

func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{profiles: make(map[string]Profile)}
}

func (s *InMemoryProfileStore) Create(_ context.Context, p Profile) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.profiles {
		if existing.Name == p.Name {
			return Profile{}, ErrProfileExists
		}
	}

	p.ID = uuid.NewString()
	s.profiles[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *InMemoryProfileStore) Get(_ context.Context, profileID string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[profileID]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (s *InMemoryProfileStore) List(_ context.Context) ([]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Profile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.profiles[id])
	}
	return out, nil
}

func (s *InMemoryProfileStore) Exists(_ context.Context, profileID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.profiles[profileID]
	return ok, nil
}

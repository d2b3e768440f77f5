package store

import (
	"context"
	"errors"
)

// Profile is a personality profile that comments vote on. Names are unique;
// every typing field besides name is optional.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MBTI        string `json:"mbti,omitempty"`
	Enneagram   string `json:"enneagram,omitempty"`
	Variant     string `json:"variant,omitempty"`
	Tritype     string `json:"tritype,omitempty"`
	Socionics   string `json:"socionics,omitempty"`
	Sloan       string `json:"sloan,omitempty"`
	Psyche      string `json:"psyche,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ProfileStore defines the contract for profile persistence. Exists is the
// lookup the comment service uses to validate the profile reference on create.
type ProfileStore interface {
	Create(ctx context.Context, p Profile) (Profile, error)
	Get(ctx context.Context, profileID string) (Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Exists(ctx context.Context, profileID string) (bool, error)
}

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

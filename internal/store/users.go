package store

import (
	"context"
	"errors"
)

// User is a commenting identity. Names are unique.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserStore defines the contract for user persistence. Exists is the lookup
// the comment service uses to validate the user reference on create.
type UserStore interface {
	Create(ctx context.Context, name string) (User, error)
	Get(ctx context.Context, userID string) (User, error)
	List(ctx context.Context) ([]User, error)
	Exists(ctx context.Context, userID string) (bool, error)
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

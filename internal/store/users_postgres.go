package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUserStore persists users in Postgres.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

func (s *PostgresUserStore) Create(ctx context.Context, name string) (User, error) {
	// Name uniqueness rides on the unique index; a conflicting insert
	// returns no row.
	const q = `INSERT INTO users (id, name) VALUES ($1, $2)
	           ON CONFLICT (name) DO NOTHING
	           RETURNING id, name`
	var u User
	err := s.pool.QueryRow(ctx, q, uuid.NewString(), name).Scan(&u.ID, &u.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserExists
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *PostgresUserStore) Get(ctx context.Context, userID string) (User, error) {
	const q = `SELECT id, name FROM users WHERE id = $1`
	var u User
	err := s.pool.QueryRow(ctx, q, userID).Scan(&u.ID, &u.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *PostgresUserStore) List(ctx context.Context) ([]User, error) {
	const q = `SELECT id, name FROM users ORDER BY name ASC`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *PostgresUserStore) Exists(ctx context.Context, userID string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	var ok bool
	if err := s.pool.QueryRow(ctx, q, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProfileStore persists profiles in Postgres.
type PostgresProfileStore struct {
	pool *pgxpool.Pool
}

func NewPostgresProfileStore(pool *pgxpool.Pool) *PostgresProfileStore {
	return &PostgresProfileStore{pool: pool}
}

const profileColumns = `id, name, description, mbti, enneagram, variant, tritype, socionics, sloan, psyche, image`

func (s *PostgresProfileStore) Create(ctx context.Context, p Profile) (Profile, error) {
	const q = `INSERT INTO profiles (id, name, description, mbti, enneagram, variant, tritype, socionics, sloan, psyche, image)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	           ON CONFLICT (name) DO NOTHING
	           RETURNING ` + profileColumns
	row := s.pool.QueryRow(ctx, q, uuid.NewString(), p.Name, p.Description, p.MBTI,
		p.Enneagram, p.Variant, p.Tritype, p.Socionics, p.Sloan, p.Psyche, p.Image)
	out, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrProfileExists
	}
	return out, err
}

func (s *PostgresProfileStore) Get(ctx context.Context, profileID string) (Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	out, err := scanProfile(s.pool.QueryRow(ctx, q, profileID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrProfileNotFound
	}
	return out, err
}

func (s *PostgresProfileStore) List(ctx context.Context) ([]Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profiles ORDER BY name ASC`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresProfileStore) Exists(ctx context.Context, profileID string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM profiles WHERE id = $1)`
	var ok bool
	if err := s.pool.QueryRow(ctx, q, profileID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func scanProfile(row pgx.Row) (Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.MBTI, &p.Enneagram,
		&p.Variant, &p.Tritype, &p.Socionics, &p.Sloan, &p.Psyche, &p.Image)
	return p, err
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCommentStore persists comments in Postgres. The likedBy set lives
// in the comment_likes table keyed by (comment_id, user_id); the likes
// counter on the comments row is maintained in the same transaction.
type PostgresCommentStore struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentStore creates a store backed by Postgres.
func NewPostgresCommentStore(pool *pgxpool.Pool) *PostgresCommentStore {
	return &PostgresCommentStore{pool: pool}
}

const commentColumns = `id, title, description, vote_mbti, vote_enneagram, vote_zodiac,
	date, likes, user_id, profile_id,
	(SELECT COALESCE(array_agg(cl.user_id), ARRAY[]::text[])
	   FROM comment_likes cl WHERE cl.comment_id = comments.id) AS liked_by`

func (s *PostgresCommentStore) Create(ctx context.Context, c Comment) (Comment, error) {
	const q = `INSERT INTO comments (id, title, description, vote_mbti, vote_enneagram, vote_zodiac, user_id, profile_id)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	           RETURNING id, title, description, vote_mbti, vote_enneagram, vote_zodiac, date, likes, user_id, profile_id`
	row := s.pool.QueryRow(ctx, q, uuid.NewString(), c.Title, c.Description,
		c.VoteMBTI, c.VoteEnneagram, c.VoteZodiac, c.UserID, c.ProfileID)

	var out Comment
	err := row.Scan(&out.ID, &out.Title, &out.Description, &out.VoteMBTI, &out.VoteEnneagram,
		&out.VoteZodiac, &out.Date, &out.Likes, &out.UserID, &out.ProfileID)
	if err != nil {
		return Comment{}, err
	}
	out.LikedBy = []string{}
	return out, nil
}

func (s *PostgresCommentStore) Get(ctx context.Context, commentID string) (Comment, error) {
	q := fmt.Sprintf(`SELECT %s FROM comments WHERE id = $1`, commentColumns)
	c, err := scanComment(s.pool.QueryRow(ctx, q, commentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Comment{}, ErrCommentNotFound
	}
	return c, err
}

func (s *PostgresCommentStore) List(ctx context.Context, query CommentQuery) ([]Comment, error) {
	// Storage order is (date, id) ascending; the explicit sorts break ties
	// with that same order so results stay stable within a query.
	order := `ORDER BY date ASC, id ASC`
	switch query.Sort {
	case SortBest:
		order = `ORDER BY likes DESC, date ASC, id ASC`
	case SortRecent:
		order = `ORDER BY date DESC, id ASC`
	}

	q := fmt.Sprintf(`SELECT %s FROM comments `, commentColumns)
	var args []any
	if query.ProfileID != "" {
		q += `WHERE profile_id = $1 `
		args = append(args, query.ProfileID)
	}
	q += order

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresCommentStore) Like(ctx context.Context, commentID, userID string) (Comment, error) {
	return s.vote(ctx, commentID, userID, true)
}

func (s *PostgresCommentStore) Unlike(ctx context.Context, commentID, userID string) (Comment, error) {
	return s.vote(ctx, commentID, userID, false)
}

// vote applies one like/unlike transition. The row lock on the comment
// serializes concurrent transitions per comment, keeping the likes counter
// equal to the size of the likedBy set.
func (s *PostgresCommentStore) vote(ctx context.Context, commentID, userID string, like bool) (Comment, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Comment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var locked string
	err = tx.QueryRow(ctx, `SELECT id FROM comments WHERE id = $1 FOR UPDATE`, commentID).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return Comment{}, ErrCommentNotFound
	}
	if err != nil {
		return Comment{}, err
	}

	var member bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM comment_likes WHERE comment_id = $1 AND user_id = $2)`,
		commentID, userID).Scan(&member)
	if err != nil {
		return Comment{}, err
	}

	if like {
		if member {
			return Comment{}, ErrAlreadyLiked
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2)`,
			commentID, userID); err != nil {
			return Comment{}, err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE comments SET likes = likes + 1 WHERE id = $1`, commentID); err != nil {
			return Comment{}, err
		}
	} else {
		if !member {
			return Comment{}, ErrAlreadyUnliked
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`,
			commentID, userID); err != nil {
			return Comment{}, err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE comments SET likes = likes - 1 WHERE id = $1`, commentID); err != nil {
			return Comment{}, err
		}
	}

	q := fmt.Sprintf(`SELECT %s FROM comments WHERE id = $1`, commentColumns)
	out, err := scanComment(tx.QueryRow(ctx, q, commentID))
	if err != nil {
		return Comment{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Comment{}, err
	}
	return out, nil
}

func scanComment(row pgx.Row) (Comment, error) {
	var c Comment
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.VoteMBTI, &c.VoteEnneagram,
		&c.VoteZodiac, &c.Date, &c.Likes, &c.UserID, &c.ProfileID, &c.LikedBy)
	if err != nil {
		return Comment{}, err
	}
	if c.LikedBy == nil {
		c.LikedBy = []string{}
	}
	return c, nil
}

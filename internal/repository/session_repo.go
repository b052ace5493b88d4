package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// FindByToken looks a session up by exact token match. Returns (nil, nil)
// when no row matches; expiry is the caller's concern.
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, token, user_id, expires_at, created_at
		 FROM sessions
		 WHERE token = $1`,
		token,
	)

	var s domain.Session
	if err := row.Scan(&s.ID, &s.Token, &s.UserID, &s.ExpiresAt, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO sessions (id, token, user_id, expires_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		s.ID, s.Token, s.UserID, s.ExpiresAt,
	).Scan(&s.CreatedAt)
}

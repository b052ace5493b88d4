package service

import (
	"context"
	"strings"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
)

type SessionStore interface {
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// SessionService turns a bearer token into a caller identity. It runs once
// per authenticated request, before the handler body.
type SessionService struct {
	sessions SessionStore
	users    UserStore
}

func NewSessionService(sessions SessionStore, users UserStore) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

// Resolve validates the token against the session table and loads the
// referenced user. Store failures are logged with full detail but surface
// to the caller only as a generic unauthenticated error.
func (s *SessionService) Resolve(ctx context.Context, authorization string) (*domain.Identity, error) {
	token := strings.TrimPrefix(authorization, "Bearer ")

	if token == "" {
		return nil, domain.Unauthenticated("no token provided")
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		logger.Error("session lookup failed", "error", err)
		return nil, domain.Unauthenticated("invalid token")
	}
	if session == nil {
		return nil, domain.Unauthenticated("invalid session")
	}

	if session.ExpiresAt.Before(time.Now()) {
		return nil, domain.Unauthenticated("expired session")
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		logger.Error("user lookup failed", "error", err)
		return nil, domain.Unauthenticated("invalid token")
	}
	if user == nil {
		return nil, domain.Unauthenticated("user not found")
	}

	return &domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}, nil
}

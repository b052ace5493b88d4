// Package auth is the credential subsystem: it owns password hashing,
// account rows and session issuance. Callers treat it as a black box that
// verifies credentials and hands back an opaque bearer token.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AccountStore interface {
	CreateCredential(ctx context.Context, id, userID, passwordHash string) error
	FindCredentialHash(ctx context.Context, userID string) (string, error)
}

type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
}

// Result is what the subsystem hands back on success: the user plus an
// issued session whose expiry comes from the stored row.
type Result struct {
	User    *domain.User
	Session *domain.Session
}

type Manager struct {
	users      UserStore
	accounts   AccountStore
	sessions   SessionStore
	sessionTTL time.Duration
	bcryptCost int
}

func NewManager(users UserStore, accounts AccountStore, sessions SessionStore, sessionTTL time.Duration, bcryptCost int) *Manager {
	return &Manager{
		users:      users,
		accounts:   accounts,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}
}

// SignUpEmail creates the user, a credential account with the bcrypt hash,
// and an initial session.
func (m *Manager) SignUpEmail(ctx context.Context, email, password, name string) (*Result, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:    newID(),
		Name:  name,
		Email: email,
	}
	if err := m.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.InvalidArgument("email already in use")
		}
		return nil, err
	}

	if err := m.accounts.CreateCredential(ctx, newID(), user.ID, string(hash)); err != nil {
		return nil, err
	}

	session, err := m.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Result{User: user, Session: session}, nil
}

// SignInEmail verifies the password against the stored hash and issues a
// fresh session. Wrong email and wrong password fail identically.
func (m *Manager) SignInEmail(ctx context.Context, email, password string) (*Result, error) {
	user, err := m.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthenticated("invalid email or password")
	}

	hash, err := m.accounts.FindCredentialHash(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if hash == "" {
		return nil, domain.Unauthenticated("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, domain.Unauthenticated("invalid email or password")
	}

	session, err := m.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Result{User: user, Session: session}, nil
}

func (m *Manager) issueSession(ctx context.Context, userID string) (*domain.Session, error) {
	s := &domain.Session{
		ID:        newID(),
		Token:     newToken(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.sessionTTL),
	}
	if err := m.sessions.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func newID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

func newToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

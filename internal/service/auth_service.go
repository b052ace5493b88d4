package service

import (
	"context"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/logger"
)

// Credentials is the external credential subsystem contract: it verifies or
// creates accounts and issues sessions.
type Credentials interface {
	SignUpEmail(ctx context.Context, email, password, name string) (*auth.Result, error)
	SignInEmail(ctx context.Context, email, password string) (*auth.Result, error)
}

type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SessionSummary struct {
	Token     string    `json:"token"`
	ExpiredAt time.Time `json:"expiredAt"`
}

type AuthResponse struct {
	User    UserSummary    `json:"user"`
	Session SessionSummary `json:"session"`
}

type AuthService struct {
	creds Credentials
}

func NewAuthService(creds Credentials) *AuthService {
	return &AuthService{creds: creds}
}

func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	logger.Info("user signup attempt", "email", email)

	result, err := s.creds.SignUpEmail(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	if result == nil || result.User == nil || result.Session == nil || result.Session.Token == "" {
		return nil, domain.Internal("failed to create user")
	}

	return toAuthResponse(result), nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	result, err := s.creds.SignInEmail(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if result == nil || result.User == nil || result.Session == nil || result.Session.Token == "" {
		return nil, domain.Unauthenticated("invalid credentials")
	}

	return toAuthResponse(result), nil
}

// toAuthResponse reports the expiry stored on the issued session row rather
// than recomputing a lifetime of its own.
func toAuthResponse(r *auth.Result) *AuthResponse {
	return &AuthResponse{
		User: UserSummary{
			ID:    r.User.ID,
			Email: r.User.Email,
			Name:  r.User.Name,
		},
		Session: SessionSummary{
			Token:     r.Session.Token,
			ExpiredAt: r.Session.ExpiresAt,
		},
	}
}

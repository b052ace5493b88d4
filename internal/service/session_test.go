package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	sessions map[string]*domain.Session
	err      error
}

func (f *fakeSessionStore) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[token], nil
}

type fakeUserStore struct {
	users map[string]*domain.User
	err   error
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func resolverFixture() (*SessionService, *fakeSessionStore, *fakeUserStore) {
	sessions := &fakeSessionStore{sessions: map[string]*domain.Session{
		"good-token": {
			ID:        "s1",
			Token:     "good-token",
			UserID:    "u1",
			ExpiresAt: time.Now().Add(time.Hour),
		},
		"expired-token": {
			ID:        "s2",
			Token:     "expired-token",
			UserID:    "u1",
			ExpiresAt: time.Now().Add(-time.Minute),
		},
		"dangling-token": {
			ID:        "s3",
			Token:     "dangling-token",
			UserID:    "gone",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	users := &fakeUserStore{users: map[string]*domain.User{
		"u1": {ID: "u1", Name: "Ada", Email: "ada@example.com"},
	}}
	return NewSessionService(sessions, users), sessions, users
}

func TestResolve(t *testing.T) {
	svc, _, _ := resolverFixture()

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"empty header", "", "no token provided"},
		{"bearer prefix only", "Bearer ", "no token provided"},
		{"unknown token", "Bearer nope", "invalid session"},
		{"expired session", "Bearer expired-token", "expired session"},
		{"dangling user", "Bearer dangling-token", "user not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Resolve(context.Background(), tc.header)
			require.Error(t, err)
			require.Equal(t, domain.CodeUnauthenticated, domain.CodeOf(err))
			require.EqualError(t, err, tc.message)
		})
	}
}

func TestResolveSuccess(t *testing.T) {
	svc, _, _ := resolverFixture()

	identity, err := svc.Resolve(context.Background(), "Bearer good-token")
	require.NoError(t, err)
	require.Equal(t, "u1", identity.UserID)
	require.Equal(t, "ada@example.com", identity.Email)
	require.Equal(t, "Ada", identity.Name)
}

func TestResolveWithoutBearerPrefix(t *testing.T) {
	// the prefix is stripped when present, a bare token is accepted as-is
	svc, _, _ := resolverFixture()

	identity, err := svc.Resolve(context.Background(), "good-token")
	require.NoError(t, err)
	require.Equal(t, "u1", identity.UserID)
}

func TestResolveStoreFailuresStayGeneric(t *testing.T) {
	svc, sessions, users := resolverFixture()

	sessions.err = errors.New("connection refused")
	_, err := svc.Resolve(context.Background(), "Bearer good-token")
	require.EqualError(t, err, "invalid token")
	require.Equal(t, domain.CodeUnauthenticated, domain.CodeOf(err))

	sessions.err = nil
	users.err = errors.New("connection refused")
	_, err = svc.Resolve(context.Background(), "Bearer good-token")
	require.EqualError(t, err, "invalid token")
	require.Equal(t, domain.CodeUnauthenticated, domain.CodeOf(err))
}

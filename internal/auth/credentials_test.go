package auth

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserStore struct {
	byEmail map[string]*domain.User
}

func (m *memUserStore) Create(_ context.Context, u *domain.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.InvalidArgument("email already in use")
	}
	u.CreatedAt = time.Now()
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return m.byEmail[email], nil
}

type memAccountStore struct {
	hashes map[string]string // userID -> hash
}

func (m *memAccountStore) CreateCredential(_ context.Context, _, userID, hash string) error {
	m.hashes[userID] = hash
	return nil
}

func (m *memAccountStore) FindCredentialHash(_ context.Context, userID string) (string, error) {
	return m.hashes[userID], nil
}

type memSessionStore struct {
	created []*domain.Session
}

func (m *memSessionStore) Create(_ context.Context, s *domain.Session) error {
	s.CreatedAt = time.Now()
	m.created = append(m.created, s)
	return nil
}

func managerFixture() (*Manager, *memSessionStore) {
	sessions := &memSessionStore{}
	m := NewManager(
		&memUserStore{byEmail: make(map[string]*domain.User)},
		&memAccountStore{hashes: make(map[string]string)},
		sessions,
		7*24*time.Hour,
		bcrypt.MinCost,
	)
	return m, sessions
}

func TestSignUpEmail(t *testing.T) {
	m, sessions := managerFixture()

	res, err := m.SignUpEmail(context.Background(), "a@x.com", "password123", "Ada")
	require.NoError(t, err)
	require.NotEmpty(t, res.User.ID)
	require.Equal(t, "a@x.com", res.User.Email)
	require.NotEmpty(t, res.Session.Token)
	require.Equal(t, res.User.ID, res.Session.UserID)
	require.Len(t, sessions.created, 1)

	// session lifetime is persisted on the row
	ttl := time.Until(res.Session.ExpiresAt)
	require.InDelta(t, (7 * 24 * time.Hour).Seconds(), ttl.Seconds(), 60)
}

func TestSignUpEmailDuplicate(t *testing.T) {
	m, _ := managerFixture()

	_, err := m.SignUpEmail(context.Background(), "a@x.com", "password123", "Ada")
	require.NoError(t, err)

	_, err = m.SignUpEmail(context.Background(), "a@x.com", "password456", "Imposter")
	require.Error(t, err)
	require.Equal(t, domain.CodeInvalidArgument, domain.CodeOf(err))
}

func TestSignInEmail(t *testing.T) {
	m, _ := managerFixture()

	_, err := m.SignUpEmail(context.Background(), "a@x.com", "password123", "Ada")
	require.NoError(t, err)

	res, err := m.SignInEmail(context.Background(), "a@x.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", res.User.Email)
	require.NotEmpty(t, res.Session.Token)
}

func TestSignInEmailRejections(t *testing.T) {
	m, _ := managerFixture()

	_, err := m.SignUpEmail(context.Background(), "a@x.com", "password123", "Ada")
	require.NoError(t, err)

	// wrong password and unknown email fail with the same message
	_, badPass := m.SignInEmail(context.Background(), "a@x.com", "wrong-password")
	_, badEmail := m.SignInEmail(context.Background(), "nobody@x.com", "password123")

	require.Error(t, badPass)
	require.Error(t, badEmail)
	require.Equal(t, badPass.Error(), badEmail.Error())
	require.Equal(t, domain.CodeUnauthenticated, domain.CodeOf(badPass))
	require.Equal(t, domain.CodeUnauthenticated, domain.CodeOf(badEmail))
}

func TestSignInIssuesDistinctTokens(t *testing.T) {
	m, _ := managerFixture()

	first, err := m.SignUpEmail(context.Background(), "a@x.com", "password123", "Ada")
	require.NoError(t, err)

	second, err := m.SignInEmail(context.Background(), "a@x.com", "password123")
	require.NoError(t, err)
	require.NotEqual(t, first.Session.Token, second.Session.Token)
}

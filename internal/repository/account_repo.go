package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// providerCredential marks accounts carrying a password hash, as opposed to
// accounts from external identity providers.
const providerCredential = "credential"

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) CreateCredential(ctx context.Context, id, userID, passwordHash string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (id, account_id, provider_id, user_id, password)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, userID, providerCredential, userID, passwordHash,
	)
	return err
}

// FindCredentialHash returns the stored password hash for the user, or
// ("", nil) when the user has no credential account.
func (r *AccountRepository) FindCredentialHash(ctx context.Context, userID string) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(password, '')
		 FROM accounts
		 WHERE user_id = $1 AND provider_id = $2`,
		userID, providerCredential,
	).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

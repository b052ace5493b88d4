package repository

import (
	"context"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MembershipRepository struct {
	db *pgxpool.Pool
}

func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// IsMember reports whether a membership row exists for the exact
// (user, org) pair, regardless of role.
func (r *MembershipRepository) IsMember(ctx context.Context, userID string, orgID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM users_to_organizations
			WHERE user_id = $1 AND org_id = $2
		)`,
		userID, orgID,
	).Scan(&exists)
	return exists, err
}

// IsAdmin reports whether the pair's membership row carries the admin role.
func (r *MembershipRepository) IsAdmin(ctx context.Context, userID string, orgID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM users_to_organizations
			WHERE user_id = $1 AND org_id = $2 AND role = 'admin'
		)`,
		userID, orgID,
	).Scan(&exists)
	return exists, err
}

func (r *MembershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users_to_organizations (user_id, org_id, role)
		 VALUES ($1, $2, $3)`,
		m.UserID, m.OrgID, m.Role,
	)
	return err
}

package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrgRepository struct {
	db *pgxpool.Pool
}

func NewOrgRepository(db *pgxpool.Pool) *OrgRepository {
	return &OrgRepository{db: db}
}

// Create inserts an organization. There is no HTTP endpoint for this;
// organizations are provisioned out of band (see cmd/seed_org).
func (r *OrgRepository) Create(ctx context.Context, o *domain.Organization) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO organizations (name) VALUES ($1) RETURNING id`,
		o.Name,
	).Scan(&o.ID)
}

func (r *OrgRepository) FindByID(ctx context.Context, id int64) (*domain.Organization, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(name, '') FROM organizations WHERE id = $1`,
		id,
	)

	var o domain.Organization
	if err := row.Scan(&o.ID, &o.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/propside/backoffice/internal/models"
)

type OrganizationRepository interface {
	Create(ctx context.Context, o *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	ListAll(ctx context.Context) ([]*models.Organization, error)
}

type organizationRepo struct {
	db DB
}

func NewOrganizationRepository(db DB) OrganizationRepository {
	return &organizationRepo{db: db}
}

func (r *organizationRepo) Create(ctx context.Context, o *models.Organization) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO organizations (
            id, name, contact_email, contact_phone, address, city, state, zip_code,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), NOW(), 1)
    `,
		o.ID, o.Name, o.ContactEmail, o.ContactPhone,
		o.Address, o.City, o.State, o.ZipCode,
	)
	return TranslateError(err)
}

func (r *organizationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	row := r.db.QueryRow(ctx, baseSelectOrganization()+" WHERE id=$1", id)
	return scanOrganization(row)
}

func (r *organizationRepo) ListAll(ctx context.Context) ([]*models.Organization, error) {
	rows, err := r.db.Query(ctx, baseSelectOrganization()+" ORDER BY created_at")
	if err != nil {
		return nil, TranslateError(err)
	}
	defer rows.Close()

	var out []*models.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func baseSelectOrganization() string {
	return `
        SELECT
            id, name, contact_email, contact_phone, address, city, state, zip_code,
            created_at, updated_at, row_version
        FROM organizations
    `
}

func scanOrganization(row pgx.Row) (*models.Organization, error) {
	var o models.Organization
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.ContactEmail,
		&o.ContactPhone,
		&o.Address,
		&o.City,
		&o.State,
		&o.ZipCode,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, TranslateError(err)
	}
	return &o, nil
}

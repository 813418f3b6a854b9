package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/propside/backoffice/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type EntityRepository interface {
	Create(ctx context.Context, e *models.Entity) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Entity, error)
	ListByOrganizationID(ctx context.Context, orgID uuid.UUID) ([]*models.Entity, error)

	Update(ctx context.Context, e *models.Entity) error
	UpdateIfVersion(ctx context.Context, e *models.Entity, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Entity) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type entityRepo struct {
	*BaseVersionedRepo[*models.Entity]
	db DB
}

func NewEntityRepository(db DB) EntityRepository {
	r := &entityRepo{db: db}
	selectStmt := baseSelectEntity() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanEntity)
	return r
}

func (r *entityRepo) Create(ctx context.Context, e *models.Entity) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO entities (
            id, organization_id, name, legal_name, tax_id,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
    `,
		e.ID, e.OrganizationID, e.Name, e.LegalName, e.TaxID,
	)
	return TranslateError(err)
}

func (r *entityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Entity, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *entityRepo) ListByOrganizationID(ctx context.Context, orgID uuid.UUID) ([]*models.Entity, error) {
	rows, err := r.db.Query(ctx, baseSelectEntity()+" WHERE organization_id=$1 ORDER BY created_at", orgID)
	if err != nil {
		return nil, TranslateError(err)
	}
	defer rows.Close()

	var out []*models.Entity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *entityRepo) Update(ctx context.Context, e *models.Entity) error {
	_, err := r.update(ctx, e, false, 0)
	return TranslateError(err)
}

func (r *entityRepo) UpdateIfVersion(ctx context.Context, e *models.Entity, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, e, true, expected)
}

func (r *entityRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Entity) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

// organization_id is deliberately absent from the SET list: ownership is
// immutable after creation.
func (r *entityRepo) update(ctx context.Context, e *models.Entity, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE entities SET
            name=$1, legal_name=$2, tax_id=$3, updated_at=NOW()
    `
	args := []any{e.Name, e.LegalName, e.TaxID}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$4 AND row_version=$5`
		args = append(args, e.ID, expected)
	} else {
		sql += ` WHERE id=$4`
		args = append(args, e.ID)
	}

	return r.db.Exec(ctx, sql, args...)
}

func (r *entityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM entities WHERE id=$1`, id)
	return TranslateError(err)
}

func baseSelectEntity() string {
	return `
        SELECT
            id, organization_id, name, legal_name, tax_id,
            created_at, updated_at, row_version
        FROM entities
    `
}

func scanEntity(row pgx.Row) (*models.Entity, error) {
	var e models.Entity
	err := row.Scan(
		&e.ID,
		&e.OrganizationID,
		&e.Name,
		&e.LegalName,
		&e.TaxID,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, TranslateError(err)
	}
	return &e, nil
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/utils"
)

/* ───────────── public interface ───────────── */

type LeaseRepository interface {
	Create(ctx context.Context, l *models.Lease) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error)
	ListBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]*models.Lease, error)
	CountActiveBySpaceID(ctx context.Context, spaceID uuid.UUID) (int, error)

	UpdateIfVersion(ctx context.Context, l *models.Lease, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Lease) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type leaseRepo struct {
	*BaseVersionedRepo[*models.Lease]
	db DB
}

func NewLeaseRepository(db DB) LeaseRepository {
	r := &leaseRepo{db: db}
	selectStmt := baseSelectLease() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanLease)
	return r
}

// Create refuses a second ACTIVE lease for the same space. The leases
// table also carries a partial unique index (one_active_lease_per_space),
// so the check here only decides which error the caller sees.
func (r *leaseRepo) Create(ctx context.Context, l *models.Lease) error {
	if l.Status == models.LeaseStatusActive {
		n, err := r.CountActiveBySpaceID(ctx, l.SpaceID)
		if err != nil {
			return err
		}
		if n > 0 {
			return utils.ErrLeaseAlreadyActive
		}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO leases (
			id, space_id, tenant_id, start_date, end_date,
			monthly_rent_cents, deposit_cents, status,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), NOW(), 1)
	`,
		l.ID, l.SpaceID, l.TenantID, l.StartDate, l.EndDate,
		l.MonthlyRentCents, l.DepositCents, l.Status,
	)
	return TranslateError(err)
}

func (r *leaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *leaseRepo) ListBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]*models.Lease, error) {
	rows, err := r.db.Query(ctx, baseSelectLease()+" WHERE space_id=$1 ORDER BY start_date", spaceID)
	if err != nil {
		return nil, TranslateError(err)
	}
	defer rows.Close()

	var out []*models.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *leaseRepo) CountActiveBySpaceID(ctx context.Context, spaceID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM leases WHERE space_id=$1 AND status='ACTIVE'`, spaceID,
	).Scan(&n)
	if err != nil {
		return 0, TranslateError(err)
	}
	return n, nil
}

func (r *leaseRepo) UpdateIfVersion(ctx context.Context, l *models.Lease, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE leases SET
			start_date=$1, end_date=$2, monthly_rent_cents=$3,
			deposit_cents=$4, status=$5, updated_at=NOW(),
			row_version=row_version+1
		WHERE id=$6 AND row_version=$7
	`,
		l.StartDate, l.EndDate, l.MonthlyRentCents,
		l.DepositCents, l.Status, l.ID, expected,
	)
}

func (r *leaseRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Lease) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *leaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM leases WHERE id=$1`, id)
	return TranslateError(err)
}

/* ---------- internals ---------- */

func baseSelectLease() string {
	return `
		SELECT id, space_id, tenant_id, start_date, end_date,
		monthly_rent_cents, deposit_cents, status,
		created_at, updated_at, row_version
		FROM leases`
}

func scanLease(row pgx.Row) (*models.Lease, error) {
	var l models.Lease
	if err := row.Scan(
		&l.ID, &l.SpaceID, &l.TenantID, &l.StartDate, &l.EndDate,
		&l.MonthlyRentCents, &l.DepositCents, &l.Status,
		&l.CreatedAt, &l.UpdatedAt, &l.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, TranslateError(err)
	}
	return &l, nil
}

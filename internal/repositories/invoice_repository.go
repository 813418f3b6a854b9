package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/utils"
)

/* ───────────── public interface ───────────── */

// OverdueInvoiceRow carries an overdue invoice together with the sum of
// COMPLETED payments already applied to it. The aging computation itself
// lives in the report service.
type OverdueInvoiceRow struct {
	InvoiceID     uuid.UUID
	InvoiceNumber string
	SpaceID       uuid.UUID
	UnitNumber    string
	AmountCents   int64
	PaidCents     int64
	DueDate       time.Time
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *models.Invoice) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	ListOverdueByEntityID(ctx context.Context, entityID uuid.UUID, asOf time.Time) ([]*OverdueInvoiceRow, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatusType) error
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

/* ───────────── implementation ───────────── */

type invoiceRepo struct {
	db DB
}

func NewInvoiceRepository(db DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO invoices (
			id, lease_id, invoice_number, amount_cents, issue_date, due_date,
			status, memo, created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), NOW(), 1)
	`,
		inv.ID, inv.LeaseID, inv.InvoiceNumber, inv.AmountCents,
		inv.IssueDate, inv.DueDate, inv.Status, inv.Memo,
	)
	return TranslateError(err)
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, lease_id, invoice_number, amount_cents, issue_date, due_date,
		       status, memo, created_at, updated_at, row_version
		FROM invoices WHERE id=$1
	`, id)

	var inv models.Invoice
	if err := row.Scan(
		&inv.ID, &inv.LeaseID, &inv.InvoiceNumber, &inv.AmountCents,
		&inv.IssueDate, &inv.DueDate, &inv.Status, &inv.Memo,
		&inv.CreatedAt, &inv.UpdatedAt, &inv.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, TranslateError(err)
	}
	return &inv, nil
}

// ListOverdueByEntityID returns invoices in SENT or OVERDUE state whose due
// date is strictly before asOf, scoped through lease → space → property to
// the entity, with applied COMPLETED payments pre-summed per invoice.
func (r *invoiceRepo) ListOverdueByEntityID(ctx context.Context, entityID uuid.UUID, asOf time.Time) ([]*OverdueInvoiceRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.invoice_number, s.id, s.unit_number, i.amount_cents,
		       COALESCE((
		           SELECT SUM(pay.amount_cents) FROM payments pay
		           WHERE pay.invoice_id=i.id AND pay.status='COMPLETED'
		       ), 0),
		       i.due_date
		FROM invoices i
		JOIN leases l ON l.id = i.lease_id
		JOIN spaces s ON s.id = l.space_id
		JOIN properties p ON p.id = s.property_id
		WHERE p.entity_id=$1
		  AND i.status IN ('SENT','OVERDUE')
		  AND i.due_date < $2
		ORDER BY i.due_date
	`, entityID, asOf)
	if err != nil {
		return nil, TranslateError(err)
	}
	defer rows.Close()

	var out []*OverdueInvoiceRow
	for rows.Next() {
		var row OverdueInvoiceRow
		if err := rows.Scan(
			&row.InvoiceID, &row.InvoiceNumber, &row.SpaceID, &row.UnitNumber,
			&row.AmountCents, &row.PaidCents, &row.DueDate,
		); err != nil {
			return nil, TranslateError(err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatusType) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE invoices SET status=$1, updated_at=NOW(), row_version=row_version+1
		WHERE id=$2
	`, status, id)
	if err != nil {
		return TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// MarkOverdue flips SENT invoices past their due date to OVERDUE and
// returns how many rows changed. Run nightly by the sweep service.
func (r *invoiceRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE invoices SET status='OVERDUE', updated_at=NOW(), row_version=row_version+1
		WHERE status='SENT' AND due_date < $1
	`, asOf)
	if err != nil {
		return 0, TranslateError(err)
	}
	return tag.RowsAffected(), nil
}

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/propside/backoffice/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error

	// SumCompletedCentsByEntityID is the realized-income aggregation:
	// COMPLETED payments joined through invoice → lease → space → property
	// to the entity, paid date inside [start, end] inclusive. Returns 0 on
	// an empty window.
	SumCompletedCentsByEntityID(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (int64, error)
}

type paymentRepo struct {
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (
			id, invoice_id, amount_cents, paid_date, method, status, reference,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW(), 1)
	`,
		p.ID, p.InvoiceID, p.AmountCents, p.PaidDate, p.Method, p.Status, p.Reference,
	)
	return TranslateError(err)
}

func (r *paymentRepo) SumCompletedCentsByEntityID(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (int64, error) {
	sql := `
		SELECT COALESCE(SUM(pay.amount_cents), 0)
		FROM payments pay
		JOIN invoices i ON i.id = pay.invoice_id
		JOIN leases l ON l.id = i.lease_id
		JOIN spaces s ON s.id = l.space_id
		JOIN properties p ON p.id = s.property_id
		WHERE p.entity_id=$1
		  AND pay.status='COMPLETED'
		  AND pay.paid_date >= $2 AND pay.paid_date <= $3
	`
	args := []any{entityID, start, end}
	if propID != nil {
		args = append(args, *propID)
		sql += ` AND s.property_id=$4`
	}

	var cents int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&cents); err != nil {
		return 0, TranslateError(err)
	}
	return cents, nil
}

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/propside/backoffice/internal/models"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *models.PropertyExpense) error

	// SumCentsByEntityID totals property expenses for properties under the
	// entity with expense date inside [start, end] inclusive. 0 on empty.
	SumCentsByEntityID(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (int64, error)
}

type expenseRepo struct {
	db DB
}

func NewExpenseRepository(db DB) ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, e *models.PropertyExpense) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO property_expenses (
			id, property_id, category, description, amount_cents, expense_date,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6, NOW(), NOW(), 1)
	`,
		e.ID, e.PropertyID, e.Category, e.Description, e.AmountCents, e.ExpenseDate,
	)
	return TranslateError(err)
}

func (r *expenseRepo) SumCentsByEntityID(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (int64, error) {
	sql := `
		SELECT COALESCE(SUM(ex.amount_cents), 0)
		FROM property_expenses ex
		JOIN properties p ON p.id = ex.property_id
		WHERE p.entity_id=$1
		  AND ex.expense_date >= $2 AND ex.expense_date <= $3
	`
	args := []any{entityID, start, end}
	if propID != nil {
		args = append(args, *propID)
		sql += ` AND ex.property_id=$4`
	}

	var cents int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&cents); err != nil {
		return 0, TranslateError(err)
	}
	return cents, nil
}

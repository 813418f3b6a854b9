package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/propside/backoffice/internal/models"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error

	// CountByStatus / CountByPriority group requests under the entity
	// (optionally one property) by bucket within a requested-date window.
	// Buckets with no rows are simply absent from the map; the report
	// service fills the zeroes.
	CountByStatus(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (map[models.MaintenanceStatusType]int, error)
	CountByPriority(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (map[models.MaintenancePriorityType]int, error)
}

type maintenanceRepo struct {
	db DB
}

func NewMaintenanceRepository(db DB) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO maintenance_requests (
			id, property_id, space_id, title, description, status, priority,
			requested_at, completed_at, created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW(), 1)
	`,
		m.ID, m.PropertyID, m.SpaceID, m.Title, m.Description,
		m.Status, m.Priority, m.RequestedAt, m.CompletedAt,
	)
	return TranslateError(err)
}

func (r *maintenanceRepo) CountByStatus(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (map[models.MaintenanceStatusType]int, error) {
	sql := `
		SELECT m.status, COUNT(*)
		FROM maintenance_requests m
		JOIN properties p ON p.id = m.property_id
		WHERE p.entity_id=$1
		  AND m.requested_at >= $2 AND m.requested_at <= $3
	`
	args := []any{entityID, start, end}
	if propID != nil {
		args = append(args, *propID)
		sql += ` AND m.property_id=$4`
	}
	sql += ` GROUP BY m.status`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, TranslateError(err)
	}
	defer rows.Close()

	out := make(map[models.MaintenanceStatusType]int)
	for rows.Next() {
		var status models.MaintenanceStatusType
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, TranslateError(err)
		}
		out[status] = n
	}
	return out, rows.Err()
}

func (r *maintenanceRepo) CountByPriority(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (map[models.MaintenancePriorityType]int, error) {
	sql := `
		SELECT m.priority, COUNT(*)
		FROM maintenance_requests m
		JOIN properties p ON p.id = m.property_id
		WHERE p.entity_id=$1
		  AND m.requested_at >= $2 AND m.requested_at <= $3
	`
	args := []any{entityID, start, end}
	if propID != nil {
		args = append(args, *propID)
		sql += ` AND m.property_id=$4`
	}
	sql += ` GROUP BY m.priority`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, TranslateError(err)
	}
	defer rows.Close()

	out := make(map[models.MaintenancePriorityType]int)
	for rows.Next() {
		var prio models.MaintenancePriorityType
		var n int
		if err := rows.Scan(&prio, &n); err != nil {
			return nil, TranslateError(err)
		}
		out[prio] = n
	}
	return out, rows.Err()
}

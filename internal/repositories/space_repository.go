package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/propside/backoffice/internal/models"
)

/* ───────────── public interface ───────────── */

// SpaceScope narrows a listing to the caller's permitted slice of the
// tenancy tree. Exactly one field is set by the service layer.
type SpaceScope struct {
	OrganizationID *uuid.UUID
	EntityIDs      []uuid.UUID
	PropertyIDs    []uuid.UUID
	All            bool
}

// SpaceFilter carries the user-facing list filters on top of the scope.
type SpaceFilter struct {
	PropertyID *uuid.UUID
	Search     string
	SpaceType  *models.SpaceTypeType
	Bedrooms   *int
	Floor      *int
	Available  *bool

	Page  int
	Limit int
}

// SpaceListRow is a space joined with its property name for listings.
type SpaceListRow struct {
	Space        *models.Space
	PropertyName string
	Occupied     bool
}

type SpaceRepository interface {
	Create(ctx context.Context, s *models.Space) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Space, error)
	ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Space, error)
	List(ctx context.Context, scope SpaceScope, f SpaceFilter, asOf time.Time) ([]*SpaceListRow, int, error)

	ExistsUnitNumber(ctx context.Context, propID uuid.UUID, unitNumber string, excludeID *uuid.UUID) (bool, error)
	CountByEntityID(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID) (int, error)
	CountOccupiedByEntityID(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, asOf time.Time) (int, error)

	Update(ctx context.Context, s *models.Space) error
	UpdateIfVersion(ctx context.Context, s *models.Space, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Space) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type spaceRepo struct {
	*BaseVersionedRepo[*models.Space]
	db DB
}

func NewSpaceRepository(db DB) SpaceRepository {
	r := &spaceRepo{db: db}
	selectStmt := baseSelectSpace() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanSpace)
	return r
}

/* ---------- create ---------- */

func (r *spaceRepo) Create(ctx context.Context, s *models.Space) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO spaces (
			id, property_id, unit_number, description, space_type, floor,
			square_feet, bedrooms, bathrooms, market_rent_cents,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, NOW(), NOW(), 1)
	`,
		s.ID, s.PropertyID, s.UnitNumber, s.Description, s.SpaceType, s.Floor,
		s.SquareFeet, s.Bedrooms, s.Bathrooms, s.MarketRentCents,
	)
	return TranslateError(err)
}

/* ---------- reads ---------- */

func (r *spaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Space, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *spaceRepo) ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Space, error) {
	rows, err := r.db.Query(ctx, baseSelectSpace()+" WHERE property_id=$1 ORDER BY unit_number", propID)
	if err != nil {
		return nil, TranslateError(err)
	}
	defer rows.Close()
	return scanSpaces(rows)
}

// List joins spaces with their property (for name search and display) and
// an ACTIVE-lease existence check (for availability/occupancy), applies the
// caller scope plus the user filters, and returns one page plus the total.
func (r *spaceRepo) List(ctx context.Context, scope SpaceScope, f SpaceFilter, asOf time.Time) ([]*SpaceListRow, int, error) {
	where := " WHERE 1=1"
	var args []any

	// asOf is bound lazily so the COUNT query never carries an unused
	// parameter; asOfIdx is its placeholder index once bound.
	asOfIdx := 0
	occupiedExpr := func(n int) string {
		return fmt.Sprintf(`EXISTS (
		SELECT 1 FROM leases l
		WHERE l.space_id=s.id AND l.status='ACTIVE'
		  AND l.start_date<=$%d AND l.end_date>=$%d
	)`, n, n)
	}

	switch {
	case scope.All:
		// unrestricted
	case scope.OrganizationID != nil:
		args = append(args, *scope.OrganizationID)
		where += fmt.Sprintf(" AND e.organization_id=$%d", len(args))
	case len(scope.EntityIDs) > 0:
		args = append(args, uuidStrings(scope.EntityIDs))
		where += fmt.Sprintf(" AND p.entity_id = ANY($%d::uuid[])", len(args))
	case len(scope.PropertyIDs) > 0:
		args = append(args, uuidStrings(scope.PropertyIDs))
		where += fmt.Sprintf(" AND s.property_id = ANY($%d::uuid[])", len(args))
	default:
		// empty scope matches nothing
		return nil, 0, nil
	}

	if f.PropertyID != nil {
		args = append(args, *f.PropertyID)
		where += fmt.Sprintf(" AND s.property_id=$%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (s.unit_number ILIKE $%d OR s.description ILIKE $%d OR p.property_name ILIKE $%d)", n, n, n)
	}
	if f.SpaceType != nil {
		args = append(args, *f.SpaceType)
		where += fmt.Sprintf(" AND s.space_type=$%d", len(args))
	}
	if f.Bedrooms != nil {
		args = append(args, *f.Bedrooms)
		where += fmt.Sprintf(" AND s.bedrooms=$%d", len(args))
	}
	if f.Floor != nil {
		args = append(args, *f.Floor)
		where += fmt.Sprintf(" AND s.floor=$%d", len(args))
	}
	if f.Available != nil {
		args = append(args, asOf)
		asOfIdx = len(args)
		if *f.Available {
			where += " AND NOT " + occupiedExpr(asOfIdx)
		} else {
			where += " AND " + occupiedExpr(asOfIdx)
		}
	}

	from := `
		FROM spaces s
		JOIN properties p ON p.id = s.property_id
		JOIN entities e ON e.id = p.entity_id
	`

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) "+from+where, args...).Scan(&total); err != nil {
		return nil, 0, TranslateError(err)
	}

	if asOfIdx == 0 {
		args = append(args, asOf)
		asOfIdx = len(args)
	}
	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	sql := `
		SELECT
			s.id, s.property_id, s.unit_number, s.description, s.space_type, s.floor,
			s.square_feet, s.bedrooms, s.bathrooms, s.market_rent_cents,
			s.created_at, s.updated_at, s.row_version,
			p.property_name,
			` + occupiedExpr(asOfIdx) + ` AS occupied
	` + from + where + fmt.Sprintf(" ORDER BY p.property_name, s.unit_number LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, TranslateError(err)
	}
	defer rows.Close()

	var out []*SpaceListRow
	for rows.Next() {
		var s models.Space
		var lr SpaceListRow
		if err := rows.Scan(
			&s.ID, &s.PropertyID, &s.UnitNumber, &s.Description, &s.SpaceType, &s.Floor,
			&s.SquareFeet, &s.Bedrooms, &s.Bathrooms, &s.MarketRentCents,
			&s.CreatedAt, &s.UpdatedAt, &s.RowVersion,
			&lr.PropertyName, &lr.Occupied,
		); err != nil {
			return nil, 0, TranslateError(err)
		}
		lr.Space = &s
		out = append(out, &lr)
	}
	return out, total, rows.Err()
}

func (r *spaceRepo) ExistsUnitNumber(ctx context.Context, propID uuid.UUID, unitNumber string, excludeID *uuid.UUID) (bool, error) {
	sql := `SELECT EXISTS (SELECT 1 FROM spaces WHERE property_id=$1 AND unit_number=$2`
	args := []any{propID, unitNumber}
	if excludeID != nil {
		args = append(args, *excludeID)
		sql += ` AND id<>$3`
	}
	sql += `)`

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, TranslateError(err)
	}
	return exists, nil
}

func (r *spaceRepo) CountByEntityID(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM spaces s
		JOIN properties p ON p.id = s.property_id
		WHERE p.entity_id=$1
	`
	args := []any{entityID}
	if propID != nil {
		args = append(args, *propID)
		sql += ` AND s.property_id=$2`
	}

	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, TranslateError(err)
	}
	return n, nil
}

func (r *spaceRepo) CountOccupiedByEntityID(ctx context.Context, entityID uuid.UUID, propID *uuid.UUID, asOf time.Time) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM spaces s
		JOIN properties p ON p.id = s.property_id
		WHERE p.entity_id=$1
		  AND EXISTS (
			SELECT 1 FROM leases l
			WHERE l.space_id=s.id AND l.status='ACTIVE'
			  AND l.start_date<=$2 AND l.end_date>=$2
		  )
	`
	args := []any{entityID, asOf}
	if propID != nil {
		args = append(args, *propID)
		sql += ` AND s.property_id=$3`
	}

	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, TranslateError(err)
	}
	return n, nil
}

/* ---------- update / delete ---------- */

func (r *spaceRepo) Update(ctx context.Context, s *models.Space) error {
	_, err := r.update(ctx, s, false, 0)
	return TranslateError(err)
}

func (r *spaceRepo) UpdateIfVersion(ctx context.Context, s *models.Space, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, s, true, expected)
}

func (r *spaceRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Space) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *spaceRepo) update(ctx context.Context, s *models.Space, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE spaces SET
			unit_number=$1, description=$2, space_type=$3, floor=$4,
			square_feet=$5, bedrooms=$6, bathrooms=$7, market_rent_cents=$8,
			updated_at=NOW()
	`
	args := []any{
		s.UnitNumber, s.Description, s.SpaceType, s.Floor,
		s.SquareFeet, s.Bedrooms, s.Bathrooms, s.MarketRentCents,
	}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$9 AND row_version=$10`
		args = append(args, s.ID, expected)
	} else {
		sql += ` WHERE id=$9`
		args = append(args, s.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *spaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM spaces WHERE id=$1`, id)
	if err != nil {
		return TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectSpace() string {
	return `
		SELECT id, property_id, unit_number, description, space_type, floor,
		square_feet, bedrooms, bathrooms, market_rent_cents,
		created_at, updated_at, row_version
		FROM spaces`
}

func scanSpace(row pgx.Row) (*models.Space, error) {
	var s models.Space
	if err := row.Scan(
		&s.ID, &s.PropertyID, &s.UnitNumber, &s.Description, &s.SpaceType, &s.Floor,
		&s.SquareFeet, &s.Bedrooms, &s.Bathrooms, &s.MarketRentCents,
		&s.CreatedAt, &s.UpdatedAt, &s.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, TranslateError(err)
	}
	return &s, nil
}

func scanSpaces(rows pgx.Rows) ([]*models.Space, error) {
	var out []*models.Space
	for rows.Next() {
		s, err := scanSpace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

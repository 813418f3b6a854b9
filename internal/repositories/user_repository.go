package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/propside/backoffice/internal/models"
)

/* ───────────── public interface ───────────── */

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	ReplaceEntityGrants(ctx context.Context, userID uuid.UUID, entityIDs []uuid.UUID) error
	ReplacePropertyGrants(ctx context.Context, userID uuid.UUID, propertyIDs []uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (
			id, organization_id, email, password_hash, first_name, last_name, role,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW(), 1)
	`,
		u.ID, u.OrganizationID, u.Email, u.PasswordHash,
		u.FirstName, u.LastName, u.Role,
	)
	if err != nil {
		return TranslateError(err)
	}
	if len(u.EntityIDs) > 0 {
		if err := r.ReplaceEntityGrants(ctx, u.ID, u.EntityIDs); err != nil {
			return err
		}
	}
	if len(u.PropertyIDs) > 0 {
		if err := r.ReplacePropertyGrants(ctx, u.ID, u.PropertyIDs); err != nil {
			return err
		}
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE u.id=$1 GROUP BY u.id", id)
	return scanUser(row)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE u.email=$1 GROUP BY u.id", email)
	return scanUser(row)
}

func (r *userRepo) ReplaceEntityGrants(ctx context.Context, userID uuid.UUID, entityIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM user_entity_grants WHERE user_id=$1`, userID); err != nil {
		return TranslateError(err)
	}
	for _, eid := range entityIDs {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO user_entity_grants (user_id, entity_id) VALUES ($1,$2)`,
			userID, eid,
		); err != nil {
			return TranslateError(err)
		}
	}
	return nil
}

func (r *userRepo) ReplacePropertyGrants(ctx context.Context, userID uuid.UUID, propertyIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM user_property_grants WHERE user_id=$1`, userID); err != nil {
		return TranslateError(err)
	}
	for _, pid := range propertyIDs {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO user_property_grants (user_id, property_id) VALUES ($1,$2)`,
			userID, pid,
		); err != nil {
			return TranslateError(err)
		}
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectUser() string {
	return `
		SELECT u.id, u.organization_id, u.email, u.password_hash,
		       u.first_name, u.last_name, u.role,
		       COALESCE(array_agg(DISTINCT eg.entity_id) FILTER (WHERE eg.entity_id IS NOT NULL), '{}'),
		       COALESCE(array_agg(DISTINCT pg.property_id) FILTER (WHERE pg.property_id IS NOT NULL), '{}'),
		       u.created_at, u.updated_at, u.row_version
		FROM users u
		LEFT JOIN user_entity_grants eg ON eg.user_id = u.id
		LEFT JOIN user_property_grants pg ON pg.user_id = u.id`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var entityIDs, propertyIDs []string
	if err := row.Scan(
		&u.ID, &u.OrganizationID, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role,
		&entityIDs, &propertyIDs,
		&u.CreatedAt, &u.UpdatedAt, &u.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, TranslateError(err)
	}
	for _, s := range entityIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		u.EntityIDs = append(u.EntityIDs, id)
	}
	for _, s := range propertyIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		u.PropertyIDs = append(u.PropertyIDs, id)
	}
	return &u, nil
}

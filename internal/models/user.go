package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account. Role decides which scope checks apply;
// EntityIDs / PropertyIDs hold the managed-resource grants for the
// manager roles and are empty for everyone else.
type User struct {
	Versioned

	ID             uuid.UUID   `json:"id"`
	OrganizationID uuid.UUID   `json:"organization_id"`
	Email          string      `json:"email"`
	PasswordHash   string      `json:"-"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Role           RoleType    `json:"role"`
	EntityIDs      []uuid.UUID `json:"entity_ids,omitempty"`
	PropertyIDs    []uuid.UUID `json:"property_ids,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (u *User) GetID() string { return u.ID.String() }

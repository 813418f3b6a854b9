package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a person or company renting a space.
type Tenant struct {
	Versioned

	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Tenant) GetID() string { return t.ID.String() }

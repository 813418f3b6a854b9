package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the root of the tenancy tree. Every legal entity,
// property, space and lease traces back to exactly one organization.
type Organization struct {
	Versioned

	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (o *Organization) GetID() string { return o.ID.String() }

package models

import (
	"time"

	"github.com/google/uuid"
)

// Entity is a legal property-owning unit inside an organization.
// OrganizationID is immutable after creation; no update statement
// in the repository touches it.
type Entity struct {
	Versioned

	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	LegalName      string    `json:"legal_name"`
	TaxID          *string   `json:"tax_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (e *Entity) GetID() string { return e.ID.String() }

package models

import (
	"time"

	"github.com/google/uuid"
)

// Lease ties a tenant to a space. At most one ACTIVE lease may exist per
// space at a time; the leases table carries a partial unique index on
// (space_id) WHERE status='ACTIVE' and the repository checks before
// activating so the failure surfaces as a validation error.
type Lease struct {
	Versioned

	ID               uuid.UUID       `json:"id"`
	SpaceID          uuid.UUID       `json:"space_id"`
	TenantID         uuid.UUID       `json:"tenant_id"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	MonthlyRentCents int64           `json:"monthly_rent_cents"`
	DepositCents     int64           `json:"deposit_cents"`
	Status           LeaseStatusType `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (l *Lease) GetID() string { return l.ID.String() }

package models

import (
	"time"

	"github.com/google/uuid"
)

// Space is a rentable unit inside a property. (PropertyID, UnitNumber)
// is unique; the repository checks it and the table enforces it.
type Space struct {
	Versioned

	ID          uuid.UUID     `json:"id"`
	PropertyID  uuid.UUID     `json:"property_id"`
	UnitNumber  string        `json:"unit_number"`
	Description *string       `json:"description,omitempty"`
	SpaceType   SpaceTypeType `json:"space_type"`
	Floor       *int          `json:"floor,omitempty"`
	SquareFeet  *int          `json:"square_feet,omitempty"`
	Bedrooms    *int          `json:"bedrooms,omitempty"`
	Bathrooms   *float64      `json:"bathrooms,omitempty"`
	MarketRentCents int64     `json:"market_rent_cents"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (s *Space) GetID() string { return s.ID.String() }

package dtos

import (
	"time"

	"github.com/google/uuid"
)

/*
CreateSpaceRequest is the payload for POST /api/v1/spaces.
*/
type CreateSpaceRequest struct {
	PropertyID  uuid.UUID `json:"property_id" validate:"required"`
	UnitNumber  string    `json:"unit_number" validate:"required,max=32"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=500"`
	SpaceType   string    `json:"space_type" validate:"required,oneof=APARTMENT OFFICE RETAIL STORAGE PARKING"`
	Floor       *int      `json:"floor,omitempty" validate:"omitempty,gte=-5,lte=200"`
	SquareFeet  *int      `json:"square_feet,omitempty" validate:"omitempty,gt=0"`
	Bedrooms    *int      `json:"bedrooms,omitempty" validate:"omitempty,gte=0,lte=20"`
	Bathrooms   *float64  `json:"bathrooms,omitempty" validate:"omitempty,gte=0,lte=20"`
	MarketRent  float64   `json:"market_rent" validate:"gte=0"`
}

/*
UpdateSpaceRequest is the payload for PUT /api/v1/spaces/{id}.
Nil fields are left untouched.
*/
type UpdateSpaceRequest struct {
	UnitNumber  *string  `json:"unit_number,omitempty" validate:"omitempty,min=1,max=32"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	SpaceType   *string  `json:"space_type,omitempty" validate:"omitempty,oneof=APARTMENT OFFICE RETAIL STORAGE PARKING"`
	Floor       *int     `json:"floor,omitempty" validate:"omitempty,gte=-5,lte=200"`
	SquareFeet  *int     `json:"square_feet,omitempty" validate:"omitempty,gt=0"`
	Bedrooms    *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0,lte=20"`
	Bathrooms   *float64 `json:"bathrooms,omitempty" validate:"omitempty,gte=0,lte=20"`
	MarketRent  *float64 `json:"market_rent,omitempty" validate:"omitempty,gte=0"`
}

/*
SpaceDTO is the response shape for a single space.
*/
type SpaceDTO struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name,omitempty"`
	UnitNumber   string    `json:"unit_number"`
	Description  *string   `json:"description,omitempty"`
	SpaceType    string    `json:"space_type"`
	Floor        *int      `json:"floor,omitempty"`
	SquareFeet   *int      `json:"square_feet,omitempty"`
	Bedrooms     *int      `json:"bedrooms,omitempty"`
	Bathrooms    *float64  `json:"bathrooms,omitempty"`
	MarketRent   float64   `json:"market_rent"`
	Available    *bool     `json:"available,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

/*
ListSpacesResponse is the paginated response for GET /api/v1/spaces.
*/
type ListSpacesResponse struct {
	Results []SpaceDTO `json:"results"`
	Page    int        `json:"page"`
	Limit   int        `json:"limit"`
	Total   int        `json:"total"`
}

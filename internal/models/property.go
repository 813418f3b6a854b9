package models

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	Versioned

	ID           uuid.UUID `json:"id"`
	EntityID     uuid.UUID `json:"entity_id"`
	PropertyName string    `json:"property_name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Property) GetID() string { return p.ID.String() }

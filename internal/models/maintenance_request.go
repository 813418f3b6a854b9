package models

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceRequest struct {
	Versioned

	ID          uuid.UUID               `json:"id"`
	PropertyID  uuid.UUID               `json:"property_id"`
	SpaceID     *uuid.UUID              `json:"space_id,omitempty"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Status      MaintenanceStatusType   `json:"status"`
	Priority    MaintenancePriorityType `json:"priority"`
	RequestedAt time.Time               `json:"requested_at"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func (m *MaintenanceRequest) GetID() string { return m.ID.String() }

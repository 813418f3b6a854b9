package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	Versioned

	ID          uuid.UUID         `json:"id"`
	LeaseID     uuid.UUID         `json:"lease_id"`
	InvoiceNumber string          `json:"invoice_number"`
	AmountCents int64             `json:"amount_cents"`
	IssueDate   time.Time         `json:"issue_date"`
	DueDate     time.Time         `json:"due_date"`
	Status      InvoiceStatusType `json:"status"`
	Memo        *string           `json:"memo,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (i *Invoice) GetID() string { return i.ID.String() }

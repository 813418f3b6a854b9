package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment records money received against an invoice. Only COMPLETED
// payments count as realized income.
type Payment struct {
	Versioned

	ID          uuid.UUID         `json:"id"`
	InvoiceID   uuid.UUID         `json:"invoice_id"`
	AmountCents int64             `json:"amount_cents"`
	PaidDate    time.Time         `json:"paid_date"`
	Method      string            `json:"method"`
	Status      PaymentStatusType `json:"status"`
	Reference   *string           `json:"reference,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (p *Payment) GetID() string { return p.ID.String() }

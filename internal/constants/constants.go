package constants

import "time"

const (
	// Pagination bounds for list endpoints.
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Nightly sweep that flips SENT invoices past due to OVERDUE.
	InvoiceSweepCronSpec   = "30 2 * * *"
	InvoiceSweepJobTimeout = 2 * time.Minute

	// Access tokens for back-office sessions.
	AccessTokenTTL = 12 * time.Hour
)

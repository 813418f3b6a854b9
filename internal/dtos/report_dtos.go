package dtos

import (
	"time"

	"github.com/google/uuid"
)

// PeriodDTO is the inclusive [start, end] window a report covers.
type PeriodDTO struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

/*
ProfitLossResponse is the response for
GET /api/v1/reports/entities/{id}/profit-loss.
Amounts are dollars; they are exact cents in storage.
*/
type ProfitLossSummaryDTO struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetIncome     float64 `json:"net_income"`
	MarginPct     float64 `json:"margin_pct"`
}

type ProfitLossResponse struct {
	EntityID    uuid.UUID            `json:"entity_id"`
	Period      PeriodDTO            `json:"period"`
	Summary     ProfitLossSummaryDTO `json:"summary"`
	GeneratedAt time.Time            `json:"generated_at"`
}

/*
OccupancyResponse is the point-in-time occupancy snapshot.
Rate is a percentage in [0,100], 0 when the entity has no spaces.
*/
type OccupancySummaryDTO struct {
	TotalSpaces    int     `json:"total_spaces"`
	OccupiedSpaces int     `json:"occupied_spaces"`
	VacantSpaces   int     `json:"vacant_spaces"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

type OccupancyResponse struct {
	EntityID    uuid.UUID           `json:"entity_id"`
	PropertyID  *uuid.UUID          `json:"property_id,omitempty"`
	Summary     OccupancySummaryDTO `json:"summary"`
	GeneratedAt time.Time           `json:"generated_at"`
}

/*
MaintenanceResponse groups requests by status and priority inside the
requested-date window. Every known bucket appears, zero-count or not.
*/
type MaintenanceSummaryDTO struct {
	TotalRequests int `json:"total_requests"`
	OpenRequests  int `json:"open_requests"`
}

type MaintenanceBreakdownDTO struct {
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
}

type MaintenanceResponse struct {
	EntityID    uuid.UUID               `json:"entity_id"`
	PropertyID  *uuid.UUID              `json:"property_id,omitempty"`
	Period      PeriodDTO               `json:"period"`
	Summary     MaintenanceSummaryDTO   `json:"summary"`
	Breakdown   MaintenanceBreakdownDTO `json:"breakdown"`
	GeneratedAt time.Time               `json:"generated_at"`
}

/*
AgingResponse buckets overdue receivables by whole days past due.
Boundaries are exact: 30 days overdue is "1-30", 31 days is "31-60".
*/
type AgingBucketDTO struct {
	InvoiceCount      int     `json:"invoice_count"`
	OutstandingAmount float64 `json:"outstanding_amount"`
}

type AgingInvoiceDTO struct {
	InvoiceID         uuid.UUID `json:"invoice_id"`
	InvoiceNumber     string    `json:"invoice_number"`
	UnitNumber        string    `json:"unit_number"`
	DueDate           string    `json:"due_date"` // YYYY-MM-DD
	DaysOverdue       int       `json:"days_overdue"`
	OutstandingAmount float64   `json:"outstanding_amount"`
	Bucket            string    `json:"bucket"`
}

type AgingSummaryDTO struct {
	TotalOutstanding float64 `json:"total_outstanding"`
	InvoiceCount     int     `json:"invoice_count"`
}

type AgingBreakdownDTO struct {
	Current    AgingBucketDTO `json:"current"`
	Days1To30  AgingBucketDTO `json:"days_1_30"`
	Days31To60 AgingBucketDTO `json:"days_31_60"`
	Days61To90 AgingBucketDTO `json:"days_61_90"`
	Over90     AgingBucketDTO `json:"over_90"`
}

type AgingResponse struct {
	EntityID    uuid.UUID         `json:"entity_id"`
	Summary     AgingSummaryDTO   `json:"summary"`
	Breakdown   AgingBreakdownDTO `json:"breakdown"`
	Invoices    []AgingInvoiceDTO `json:"invoices"`
	GeneratedAt time.Time         `json:"generated_at"`
}

/*
DashboardResponse composes the other reports into one entity overview.
*/
type DashboardResponse struct {
	EntityID    uuid.UUID             `json:"entity_id"`
	EntityName  string                `json:"entity_name"`
	Period      PeriodDTO             `json:"period"`
	ProfitLoss  ProfitLossSummaryDTO  `json:"profit_loss"`
	Occupancy   OccupancySummaryDTO   `json:"occupancy"`
	Maintenance MaintenanceSummaryDTO `json:"maintenance"`
	Aging       AgingSummaryDTO       `json:"aging"`
	GeneratedAt time.Time             `json:"generated_at"`
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propside/backoffice/internal/auth"
	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/repositories"
	"github.com/propside/backoffice/internal/utils"
)

type reportFixture struct {
	service *ReportService

	orgID    uuid.UUID
	entityID uuid.UUID

	spaceRepo   *fakeSpaceRepo
	paymentRepo *fakePaymentRepo
	expenseRepo *fakeExpenseRepo
	maintRepo   *fakeMaintenanceRepo
	invoiceRepo *fakeInvoiceRepo
}

var reportNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func newReportFixture() *reportFixture {
	f := &reportFixture{
		orgID:       uuid.New(),
		entityID:    uuid.New(),
		spaceRepo:   &fakeSpaceRepo{},
		paymentRepo: &fakePaymentRepo{},
		expenseRepo: &fakeExpenseRepo{},
		maintRepo:   &fakeMaintenanceRepo{},
		invoiceRepo: &fakeInvoiceRepo{},
	}

	entityRepo := &fakeEntityRepo{entities: map[uuid.UUID]*models.Entity{
		f.entityID: {ID: f.entityID, OrganizationID: f.orgID, Name: "Residential"},
	}}
	resolver := auth.NewScopeResolver(entityRepo, &fakePropertyRepo{})

	f.service = NewReportService(resolver, f.spaceRepo, f.paymentRepo, f.expenseRepo, f.maintRepo, f.invoiceRepo)
	f.service.now = func() time.Time { return reportNow }
	return f
}

func (f *reportFixture) admin() *auth.Context {
	return &auth.Context{UserID: uuid.New(), Role: models.RoleOrgAdmin, OrganizationID: f.orgID}
}

func TestGetProfitLoss(t *testing.T) {
	f := newReportFixture()
	f.paymentRepo.sumCents = 500000 // $5,000.00
	f.expenseRepo.sumCents = 125050 // $1,250.50

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC)

	resp, err := f.service.GetProfitLoss(context.Background(), f.admin(), f.entityID, nil, start, end)
	require.NoError(t, err)
	require.Equal(t, 5000.00, resp.Summary.TotalIncome)
	require.Equal(t, 1250.50, resp.Summary.TotalExpenses)
	require.Equal(t, 3749.50, resp.Summary.NetIncome)
	require.Equal(t, 74.99, resp.Summary.MarginPct)
	require.Equal(t, "2026-07-01", resp.Period.StartDate)
	require.Equal(t, "2026-07-31", resp.Period.EndDate)
	require.Equal(t, reportNow, resp.GeneratedAt)
}

func TestGetProfitLossEmptyWindow(t *testing.T) {
	f := newReportFixture()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	resp, err := f.service.GetProfitLoss(context.Background(), f.admin(), f.entityID, nil, start, end)
	require.NoError(t, err)
	require.Zero(t, resp.Summary.TotalIncome)
	require.Zero(t, resp.Summary.TotalExpenses)
	require.Zero(t, resp.Summary.NetIncome)
	require.Zero(t, resp.Summary.MarginPct, "margin is defined as 0 when there is no income")
}

func TestGetProfitLossForbidden(t *testing.T) {
	f := newReportFixture()
	stranger := &auth.Context{UserID: uuid.New(), Role: models.RoleOrgAdmin, OrganizationID: uuid.New()}

	_, err := f.service.GetProfitLoss(context.Background(), stranger, f.entityID, nil, reportNow, reportNow)
	require.True(t, errors.Is(err, utils.ErrForbidden))
}

func TestGetOccupancy(t *testing.T) {
	f := newReportFixture()
	f.spaceRepo.total = 2
	f.spaceRepo.occupied = 1

	resp, err := f.service.GetOccupancy(context.Background(), f.admin(), f.entityID, nil)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Summary.TotalSpaces)
	require.Equal(t, 1, resp.Summary.OccupiedSpaces)
	require.Equal(t, 1, resp.Summary.VacantSpaces)
	require.Equal(t, 50.0, resp.Summary.OccupancyRate)
}

func TestGetOccupancyNoSpaces(t *testing.T) {
	f := newReportFixture()

	resp, err := f.service.GetOccupancy(context.Background(), f.admin(), f.entityID, nil)
	require.NoError(t, err)
	require.Zero(t, resp.Summary.TotalSpaces)
	require.Zero(t, resp.Summary.OccupancyRate)
}

func TestGetMaintenanceZeroFillsBuckets(t *testing.T) {
	f := newReportFixture()
	f.maintRepo.byStatus = map[models.MaintenanceStatusType]int{
		models.MaintenanceStatusOpen:       2,
		models.MaintenanceStatusInProgress: 1,
	}
	f.maintRepo.byPriority = map[models.MaintenancePriorityType]int{
		models.MaintenancePriorityHigh: 3,
	}

	resp, err := f.service.GetMaintenance(context.Background(), f.admin(), f.entityID, nil, reportNow.AddDate(0, -1, 0), reportNow)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Summary.TotalRequests)
	require.Equal(t, 3, resp.Summary.OpenRequests)

	// every status and priority appears, zero or not
	require.Len(t, resp.Breakdown.ByStatus, len(models.MaintenanceStatuses))
	require.Len(t, resp.Breakdown.ByPriority, len(models.MaintenancePriorities))
	require.Equal(t, 0, resp.Breakdown.ByStatus[string(models.MaintenanceStatusCompleted)])
	require.Equal(t, 3, resp.Breakdown.ByPriority[string(models.MaintenancePriorityHigh)])
	require.Equal(t, 0, resp.Breakdown.ByPriority[string(models.MaintenancePriorityLow)])
}

func TestDaysOverdueAndBuckets(t *testing.T) {
	due := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 14, DaysOverdue(due.AddDate(0, 0, 14), due))
	require.Equal(t, 0, DaysOverdue(due, due))
	require.Equal(t, -5, DaysOverdue(due.AddDate(0, 0, -5), due))

	require.Equal(t, AgingBucketCurrent, AgingBucketFor(0))
	require.Equal(t, AgingBucketCurrent, AgingBucketFor(-3))
	require.Equal(t, AgingBucket1To30, AgingBucketFor(1))
	require.Equal(t, AgingBucket1To30, AgingBucketFor(30))
	require.Equal(t, AgingBucket31To60, AgingBucketFor(31))
	require.Equal(t, AgingBucket31To60, AgingBucketFor(60))
	require.Equal(t, AgingBucket61To90, AgingBucketFor(61))
	require.Equal(t, AgingBucket61To90, AgingBucketFor(90))
	require.Equal(t, AgingBucketOver90, AgingBucketFor(91))
}

func TestGetAging(t *testing.T) {
	f := newReportFixture()
	spaceID := uuid.New()
	f.invoiceRepo.overdueRows = []*repositories.OverdueInvoiceRow{
		{
			InvoiceID:     uuid.New(),
			InvoiceNumber: "INV-1001",
			SpaceID:       spaceID,
			UnitNumber:    "101",
			AmountCents:   100000,
			PaidCents:     0,
			DueDate:       reportNow.AddDate(0, 0, -45),
		},
		{
			InvoiceID:     uuid.New(),
			InvoiceNumber: "INV-1002",
			SpaceID:       spaceID,
			UnitNumber:    "102",
			AmountCents:   50000,
			PaidCents:     20000,
			DueDate:       reportNow.AddDate(0, 0, -10),
		},
		{
			// fully paid, waiting on sweep: excluded entirely
			InvoiceID:     uuid.New(),
			InvoiceNumber: "INV-1003",
			SpaceID:       spaceID,
			UnitNumber:    "103",
			AmountCents:   30000,
			PaidCents:     30000,
			DueDate:       reportNow.AddDate(0, 0, -70),
		},
	}

	resp, err := f.service.GetAging(context.Background(), f.admin(), f.entityID)
	require.NoError(t, err)

	require.Equal(t, 2, resp.Summary.InvoiceCount)
	require.Equal(t, 1300.00, resp.Summary.TotalOutstanding)
	require.Len(t, resp.Invoices, 2)

	first := resp.Invoices[0]
	require.Equal(t, 45, first.DaysOverdue)
	require.Equal(t, AgingBucket31To60, first.Bucket)
	require.Equal(t, 1000.00, first.OutstandingAmount)

	second := resp.Invoices[1]
	require.Equal(t, 10, second.DaysOverdue)
	require.Equal(t, AgingBucket1To30, second.Bucket)
	require.Equal(t, 300.00, second.OutstandingAmount, "outstanding is amount minus completed payments")

	require.Equal(t, 1, resp.Breakdown.Days31To60.InvoiceCount)
	require.Equal(t, 1000.00, resp.Breakdown.Days31To60.OutstandingAmount)
	require.Equal(t, 1, resp.Breakdown.Days1To30.InvoiceCount)
	require.Equal(t, 300.00, resp.Breakdown.Days1To30.OutstandingAmount)
	require.Zero(t, resp.Breakdown.Days61To90.InvoiceCount)
	require.Zero(t, resp.Breakdown.Over90.InvoiceCount)
}

func TestGetDashboard(t *testing.T) {
	f := newReportFixture()
	f.paymentRepo.sumCents = 200000
	f.expenseRepo.sumCents = 50000
	f.spaceRepo.total = 4
	f.spaceRepo.occupied = 3
	f.maintRepo.byStatus = map[models.MaintenanceStatusType]int{
		models.MaintenanceStatusOpen:      1,
		models.MaintenanceStatusCompleted: 2,
	}
	f.invoiceRepo.overdueRows = []*repositories.OverdueInvoiceRow{
		{InvoiceID: uuid.New(), InvoiceNumber: "INV-2001", AmountCents: 80000, DueDate: reportNow.AddDate(0, 0, -5)},
	}

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	resp, err := f.service.GetDashboard(context.Background(), f.admin(), f.entityID, start, reportNow)
	require.NoError(t, err)

	require.Equal(t, "Residential", resp.EntityName)
	require.Equal(t, 2000.00, resp.ProfitLoss.TotalIncome)
	require.Equal(t, 1500.00, resp.ProfitLoss.NetIncome)
	require.Equal(t, 75.0, resp.Occupancy.OccupancyRate)
	require.Equal(t, 3, resp.Maintenance.TotalRequests)
	require.Equal(t, 1, resp.Maintenance.OpenRequests)
	require.Equal(t, 800.00, resp.Aging.TotalOutstanding)
	require.Equal(t, 1, resp.Aging.InvoiceCount)
}

func TestGetDashboardForbiddenRole(t *testing.T) {
	f := newReportFixture()
	pm := &auth.Context{UserID: uuid.New(), Role: models.RolePropertyManager, PropertyIDs: []uuid.UUID{uuid.New()}}

	_, err := f.service.GetDashboard(context.Background(), pm, f.entityID, reportNow.AddDate(0, -1, 0), reportNow)
	require.True(t, errors.Is(err, utils.ErrForbidden), "entity-wide dashboard stays off limits for property managers")
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/propside/backoffice/internal/auth"
	"github.com/propside/backoffice/internal/dtos"
	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/repositories"
	"github.com/propside/backoffice/internal/utils"
)

// Aging bucket labels, also used as the per-invoice `bucket` field.
const (
	AgingBucketCurrent = "current"
	AgingBucket1To30   = "1-30"
	AgingBucket31To60  = "31-60"
	AgingBucket61To90  = "61-90"
	AgingBucketOver90  = ">90"
)

// ReportService assembles the financial and operational reports. Every
// method authorizes the entity scope first, fans out the independent
// aggregation reads, and merges them into a response; nothing here
// mutates store state.
type ReportService struct {
	resolver    *auth.ScopeResolver
	spaceRepo   repositories.SpaceRepository
	paymentRepo repositories.PaymentRepository
	expenseRepo repositories.ExpenseRepository
	maintRepo   repositories.MaintenanceRepository
	invoiceRepo repositories.InvoiceRepository

	// overridable for deterministic tests
	now func() time.Time
}

func NewReportService(
	resolver *auth.ScopeResolver,
	spaceRepo repositories.SpaceRepository,
	paymentRepo repositories.PaymentRepository,
	expenseRepo repositories.ExpenseRepository,
	maintRepo repositories.MaintenanceRepository,
	invoiceRepo repositories.InvoiceRepository,
) *ReportService {
	return &ReportService{
		resolver:    resolver,
		spaceRepo:   spaceRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		maintRepo:   maintRepo,
		invoiceRepo: invoiceRepo,
		now:         time.Now,
	}
}

/* ---------- profit & loss ---------- */

func (s *ReportService) GetProfitLoss(ctx context.Context, actx *auth.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (*dtos.ProfitLossResponse, error) {
	if _, err := s.resolver.AuthorizeEntity(ctx, actx, entityID); err != nil {
		return nil, err
	}

	var incomeCents, expenseCents int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomeCents, err = s.paymentRepo.SumCompletedCentsByEntityID(gctx, entityID, propID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		expenseCents, err = s.expenseRepo.SumCentsByEntityID(gctx, entityID, propID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, utils.NewInternalError(err)
	}

	return &dtos.ProfitLossResponse{
		EntityID:    entityID,
		Period:      periodDTO(start, end),
		Summary:     profitLossSummary(incomeCents, expenseCents),
		GeneratedAt: s.now().UTC(),
	}, nil
}

func profitLossSummary(incomeCents, expenseCents int64) dtos.ProfitLossSummaryDTO {
	netCents := incomeCents - expenseCents
	var margin float64
	if incomeCents != 0 {
		margin = utils.Round2(float64(netCents) / float64(incomeCents) * 100)
	}
	return dtos.ProfitLossSummaryDTO{
		TotalIncome:   utils.CentsToDollars(incomeCents),
		TotalExpenses: utils.CentsToDollars(expenseCents),
		NetIncome:     utils.CentsToDollars(netCents),
		MarginPct:     margin,
	}
}

/* ---------- occupancy ---------- */

func (s *ReportService) GetOccupancy(ctx context.Context, actx *auth.Context, entityID uuid.UUID, propID *uuid.UUID) (*dtos.OccupancyResponse, error) {
	if _, err := s.resolver.AuthorizeEntity(ctx, actx, entityID); err != nil {
		return nil, err
	}

	asOf := s.now().UTC()

	var total, occupied int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.spaceRepo.CountByEntityID(gctx, entityID, propID)
		return err
	})
	g.Go(func() error {
		var err error
		occupied, err = s.spaceRepo.CountOccupiedByEntityID(gctx, entityID, propID, asOf)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, utils.NewInternalError(err)
	}

	return &dtos.OccupancyResponse{
		EntityID:    entityID,
		PropertyID:  propID,
		Summary:     occupancySummary(total, occupied),
		GeneratedAt: asOf,
	}, nil
}

// occupancySummary computes the rate, defined as 0 when there are no
// spaces at all.
func occupancySummary(total, occupied int) dtos.OccupancySummaryDTO {
	var rate float64
	if total > 0 {
		rate = utils.Round2(float64(occupied) / float64(total) * 100)
	}
	return dtos.OccupancySummaryDTO{
		TotalSpaces:    total,
		OccupiedSpaces: occupied,
		VacantSpaces:   total - occupied,
		OccupancyRate:  rate,
	}
}

/* ---------- maintenance ---------- */

func (s *ReportService) GetMaintenance(ctx context.Context, actx *auth.Context, entityID uuid.UUID, propID *uuid.UUID, start, end time.Time) (*dtos.MaintenanceResponse, error) {
	if _, err := s.resolver.AuthorizeEntity(ctx, actx, entityID); err != nil {
		return nil, err
	}

	var byStatus map[models.MaintenanceStatusType]int
	var byPriority map[models.MaintenancePriorityType]int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.maintRepo.CountByStatus(gctx, entityID, propID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		byPriority, err = s.maintRepo.CountByPriority(gctx, entityID, propID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, utils.NewInternalError(err)
	}

	breakdown := dtos.MaintenanceBreakdownDTO{
		ByStatus:   make(map[string]int, len(models.MaintenanceStatuses)),
		ByPriority: make(map[string]int, len(models.MaintenancePriorities)),
	}
	var total int
	for _, st := range models.MaintenanceStatuses {
		breakdown.ByStatus[string(st)] = byStatus[st]
		total += byStatus[st]
	}
	for _, pr := range models.MaintenancePriorities {
		breakdown.ByPriority[string(pr)] = byPriority[pr]
	}

	return &dtos.MaintenanceResponse{
		EntityID:   entityID,
		PropertyID: propID,
		Period:     periodDTO(start, end),
		Summary: dtos.MaintenanceSummaryDTO{
			TotalRequests: total,
			OpenRequests:  byStatus[models.MaintenanceStatusOpen] + byStatus[models.MaintenanceStatusInProgress],
		},
		Breakdown:   breakdown,
		GeneratedAt: s.now().UTC(),
	}, nil
}

/* ---------- receivables aging ---------- */

func (s *ReportService) GetAging(ctx context.Context, actx *auth.Context, entityID uuid.UUID) (*dtos.AgingResponse, error) {
	if _, err := s.resolver.AuthorizeEntity(ctx, actx, entityID); err != nil {
		return nil, err
	}

	asOf := s.now().UTC()
	rows, err := s.invoiceRepo.ListOverdueByEntityID(ctx, entityID, asOf)
	if err != nil {
		return nil, utils.NewInternalError(err)
	}

	resp := &dtos.AgingResponse{
		EntityID:    entityID,
		Invoices:    make([]dtos.AgingInvoiceDTO, 0, len(rows)),
		GeneratedAt: asOf,
	}

	var totalOutstandingCents int64
	for _, row := range rows {
		outstandingCents := row.AmountCents - row.PaidCents
		if outstandingCents <= 0 {
			continue // fully covered, just waiting on the status sweep
		}
		days := DaysOverdue(asOf, row.DueDate)
		bucket := AgingBucketFor(days)

		totalOutstandingCents += outstandingCents
		resp.Summary.InvoiceCount++
		addToBucket(&resp.Breakdown, bucket, outstandingCents)

		resp.Invoices = append(resp.Invoices, dtos.AgingInvoiceDTO{
			InvoiceID:         row.InvoiceID,
			InvoiceNumber:     row.InvoiceNumber,
			UnitNumber:        row.UnitNumber,
			DueDate:           row.DueDate.Format("2006-01-02"),
			DaysOverdue:       days,
			OutstandingAmount: utils.CentsToDollars(outstandingCents),
			Bucket:            bucket,
		})
	}
	resp.Summary.TotalOutstanding = utils.CentsToDollars(totalOutstandingCents)

	return resp, nil
}

// DaysOverdue is the whole number of days between the due date and asOf.
// Not-yet-due invoices produce a non-positive count.
func DaysOverdue(asOf, dueDate time.Time) int {
	return int(asOf.Sub(dueDate).Hours() / 24)
}

// AgingBucketFor places a days-overdue count in its bucket. Boundaries
// are inclusive on the upper edge: 30 → "1-30", 31 → "31-60".
func AgingBucketFor(daysOverdue int) string {
	switch {
	case daysOverdue <= 0:
		return AgingBucketCurrent
	case daysOverdue <= 30:
		return AgingBucket1To30
	case daysOverdue <= 60:
		return AgingBucket31To60
	case daysOverdue <= 90:
		return AgingBucket61To90
	default:
		return AgingBucketOver90
	}
}

func addToBucket(b *dtos.AgingBreakdownDTO, bucket string, outstandingCents int64) {
	var target *dtos.AgingBucketDTO
	switch bucket {
	case AgingBucketCurrent:
		target = &b.Current
	case AgingBucket1To30:
		target = &b.Days1To30
	case AgingBucket31To60:
		target = &b.Days31To60
	case AgingBucket61To90:
		target = &b.Days61To90
	default:
		target = &b.Over90
	}
	target.InvoiceCount++
	target.OutstandingAmount = utils.Round2(target.OutstandingAmount + utils.CentsToDollars(outstandingCents))
}

/* ---------- dashboard ---------- */

// GetDashboard composes the other reports into one overview. The scope
// check runs once here; the sub-reports are assembled from the same
// primitives rather than by calling the public methods, so the resolver
// is not re-entered per section.
func (s *ReportService) GetDashboard(ctx context.Context, actx *auth.Context, entityID uuid.UUID, start, end time.Time) (*dtos.DashboardResponse, error) {
	entity, err := s.resolver.AuthorizeEntity(ctx, actx, entityID)
	if err != nil {
		return nil, err
	}

	asOf := s.now().UTC()

	var (
		incomeCents, expenseCents int64
		totalSpaces, occupied     int
		byStatus                  map[models.MaintenanceStatusType]int
		overdueRows               []*repositories.OverdueInvoiceRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomeCents, err = s.paymentRepo.SumCompletedCentsByEntityID(gctx, entityID, nil, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		expenseCents, err = s.expenseRepo.SumCentsByEntityID(gctx, entityID, nil, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		totalSpaces, err = s.spaceRepo.CountByEntityID(gctx, entityID, nil)
		return err
	})
	g.Go(func() error {
		var err error
		occupied, err = s.spaceRepo.CountOccupiedByEntityID(gctx, entityID, nil, asOf)
		return err
	})
	g.Go(func() error {
		var err error
		byStatus, err = s.maintRepo.CountByStatus(gctx, entityID, nil, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		overdueRows, err = s.invoiceRepo.ListOverdueByEntityID(gctx, entityID, asOf)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, utils.NewInternalError(err)
	}

	var maintTotal int
	for _, st := range models.MaintenanceStatuses {
		maintTotal += byStatus[st]
	}

	var outstandingCents int64
	var overdueCount int
	for _, row := range overdueRows {
		if o := row.AmountCents - row.PaidCents; o > 0 {
			outstandingCents += o
			overdueCount++
		}
	}

	return &dtos.DashboardResponse{
		EntityID:   entityID,
		EntityName: entity.Name,
		Period:     periodDTO(start, end),
		ProfitLoss: profitLossSummary(incomeCents, expenseCents),
		Occupancy:  occupancySummary(totalSpaces, occupied),
		Maintenance: dtos.MaintenanceSummaryDTO{
			TotalRequests: maintTotal,
			OpenRequests:  byStatus[models.MaintenanceStatusOpen] + byStatus[models.MaintenanceStatusInProgress],
		},
		Aging: dtos.AgingSummaryDTO{
			TotalOutstanding: utils.CentsToDollars(outstandingCents),
			InvoiceCount:     overdueCount,
		},
		GeneratedAt: asOf,
	}, nil
}

/* ---------- shared ---------- */

func periodDTO(start, end time.Time) dtos.PeriodDTO {
	return dtos.PeriodDTO{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}
}

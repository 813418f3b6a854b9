package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/repositories"
)

// Hand-written fakes over the repository interfaces. Only the methods a
// test drives carry behavior; the rest return zero values.

type fakeEntityRepo struct {
	entities map[uuid.UUID]*models.Entity
}

func (f *fakeEntityRepo) Create(context.Context, *models.Entity) error { return nil }
func (f *fakeEntityRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Entity, error) {
	return f.entities[id], nil
}
func (f *fakeEntityRepo) ListByOrganizationID(context.Context, uuid.UUID) ([]*models.Entity, error) {
	return nil, nil
}
func (f *fakeEntityRepo) Update(context.Context, *models.Entity) error { return nil }
func (f *fakeEntityRepo) UpdateIfVersion(context.Context, *models.Entity, int64) (pgconn.CommandTag, error) {
	return nil, nil
}
func (f *fakeEntityRepo) UpdateWithRetry(context.Context, uuid.UUID, func(*models.Entity) error) error {
	return nil
}
func (f *fakeEntityRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakePropertyRepo struct {
	properties map[uuid.UUID]*models.Property
}

func (f *fakePropertyRepo) Create(context.Context, *models.Property) error { return nil }
func (f *fakePropertyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	return f.properties[id], nil
}
func (f *fakePropertyRepo) ListByEntityID(context.Context, uuid.UUID) ([]*models.Property, error) {
	return nil, nil
}
func (f *fakePropertyRepo) Update(context.Context, *models.Property) error { return nil }
func (f *fakePropertyRepo) UpdateIfVersion(context.Context, *models.Property, int64) (pgconn.CommandTag, error) {
	return nil, nil
}
func (f *fakePropertyRepo) UpdateWithRetry(context.Context, uuid.UUID, func(*models.Property) error) error {
	return nil
}
func (f *fakePropertyRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakeSpaceRepo struct {
	spaces map[uuid.UUID]*models.Space

	unitExists bool
	total      int
	occupied   int
	listRows   []*repositories.SpaceListRow
	listTotal  int

	createErr error

	created    []*models.Space
	deletedIDs []uuid.UUID
	lastFilter repositories.SpaceFilter
	lastScope  repositories.SpaceScope
}

func (f *fakeSpaceRepo) Create(_ context.Context, s *models.Space) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, s)
	return nil
}
func (f *fakeSpaceRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Space, error) {
	return f.spaces[id], nil
}
func (f *fakeSpaceRepo) ListByPropertyID(context.Context, uuid.UUID) ([]*models.Space, error) {
	return nil, nil
}
func (f *fakeSpaceRepo) List(_ context.Context, scope repositories.SpaceScope, filter repositories.SpaceFilter, _ time.Time) ([]*repositories.SpaceListRow, int, error) {
	f.lastScope = scope
	f.lastFilter = filter
	return f.listRows, f.listTotal, nil
}
func (f *fakeSpaceRepo) ExistsUnitNumber(context.Context, uuid.UUID, string, *uuid.UUID) (bool, error) {
	return f.unitExists, nil
}
func (f *fakeSpaceRepo) CountByEntityID(context.Context, uuid.UUID, *uuid.UUID) (int, error) {
	return f.total, nil
}
func (f *fakeSpaceRepo) CountOccupiedByEntityID(context.Context, uuid.UUID, *uuid.UUID, time.Time) (int, error) {
	return f.occupied, nil
}
func (f *fakeSpaceRepo) Update(context.Context, *models.Space) error { return nil }
func (f *fakeSpaceRepo) UpdateIfVersion(context.Context, *models.Space, int64) (pgconn.CommandTag, error) {
	return nil, nil
}
func (f *fakeSpaceRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.Space) error) error {
	if s, ok := f.spaces[id]; ok {
		return mutate(s)
	}
	return nil
}
func (f *fakeSpaceRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deletedIDs = append(f.deletedIDs, id)
	delete(f.spaces, id)
	return nil
}

type fakeLeaseRepo struct {
	activeCount map[uuid.UUID]int
}

func (f *fakeLeaseRepo) Create(context.Context, *models.Lease) error { return nil }
func (f *fakeLeaseRepo) GetByID(context.Context, uuid.UUID) (*models.Lease, error) {
	return nil, nil
}
func (f *fakeLeaseRepo) ListBySpaceID(context.Context, uuid.UUID) ([]*models.Lease, error) {
	return nil, nil
}
func (f *fakeLeaseRepo) CountActiveBySpaceID(_ context.Context, spaceID uuid.UUID) (int, error) {
	return f.activeCount[spaceID], nil
}
func (f *fakeLeaseRepo) UpdateIfVersion(context.Context, *models.Lease, int64) (pgconn.CommandTag, error) {
	return nil, nil
}
func (f *fakeLeaseRepo) UpdateWithRetry(context.Context, uuid.UUID, func(*models.Lease) error) error {
	return nil
}
func (f *fakeLeaseRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakePaymentRepo struct {
	sumCents int64
}

func (f *fakePaymentRepo) Create(context.Context, *models.Payment) error { return nil }
func (f *fakePaymentRepo) SumCompletedCentsByEntityID(context.Context, uuid.UUID, *uuid.UUID, time.Time, time.Time) (int64, error) {
	return f.sumCents, nil
}

type fakeExpenseRepo struct {
	sumCents int64
}

func (f *fakeExpenseRepo) Create(context.Context, *models.PropertyExpense) error { return nil }
func (f *fakeExpenseRepo) SumCentsByEntityID(context.Context, uuid.UUID, *uuid.UUID, time.Time, time.Time) (int64, error) {
	return f.sumCents, nil
}

type fakeMaintenanceRepo struct {
	byStatus   map[models.MaintenanceStatusType]int
	byPriority map[models.MaintenancePriorityType]int
}

func (f *fakeMaintenanceRepo) Create(context.Context, *models.MaintenanceRequest) error { return nil }
func (f *fakeMaintenanceRepo) CountByStatus(context.Context, uuid.UUID, *uuid.UUID, time.Time, time.Time) (map[models.MaintenanceStatusType]int, error) {
	return f.byStatus, nil
}
func (f *fakeMaintenanceRepo) CountByPriority(context.Context, uuid.UUID, *uuid.UUID, time.Time, time.Time) (map[models.MaintenancePriorityType]int, error) {
	return f.byPriority, nil
}

type fakeInvoiceRepo struct {
	overdueRows []*repositories.OverdueInvoiceRow
	markedAsOf  *time.Time
	markedCount int64
}

func (f *fakeInvoiceRepo) Create(context.Context, *models.Invoice) error { return nil }
func (f *fakeInvoiceRepo) GetByID(context.Context, uuid.UUID) (*models.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) ListOverdueByEntityID(context.Context, uuid.UUID, time.Time) ([]*repositories.OverdueInvoiceRow, error) {
	return f.overdueRows, nil
}
func (f *fakeInvoiceRepo) UpdateStatus(context.Context, uuid.UUID, models.InvoiceStatusType) error {
	return nil
}
func (f *fakeInvoiceRepo) MarkOverdue(_ context.Context, asOf time.Time) (int64, error) {
	f.markedAsOf = &asOf
	return f.markedCount, nil
}

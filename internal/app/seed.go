package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/repositories"
	"github.com/propside/backoffice/internal/utils"
)

// Fixed IDs so repeated startups recognize an already-seeded database.
var (
	seedOrgID       = uuid.MustParse("11111111-2222-3333-4444-555555555555")
	seedEntityAID   = uuid.MustParse("aaaaaaaa-1111-1111-1111-111111111111")
	seedEntityBID   = uuid.MustParse("bbbbbbbb-2222-2222-2222-222222222222")
	seedPropertyAID = uuid.MustParse("cccccccc-1111-1111-1111-111111111111")
	seedPropertyBID = uuid.MustParse("dddddddd-2222-2222-2222-222222222222")
)

const seedPassword = "P@ssword123"

// Seeder inserts a small demo data set for local development.
type Seeder struct {
	OrgRepo         repositories.OrganizationRepository
	EntityRepo      repositories.EntityRepository
	PropertyRepo    repositories.PropertyRepository
	SpaceRepo       repositories.SpaceRepository
	TenantRepo      repositories.TenantRepository
	LeaseRepo       repositories.LeaseRepository
	InvoiceRepo     repositories.InvoiceRepository
	PaymentRepo     repositories.PaymentRepository
	ExpenseRepo     repositories.ExpenseRepository
	MaintenanceRepo repositories.MaintenanceRepository
	UserRepo        repositories.UserRepository
}

// SeedDemoData is idempotent: if the sentinel organization already
// exists the whole seed is skipped.
func (s *Seeder) SeedDemoData(ctx context.Context) error {
	existing, err := s.OrgRepo.GetByID(ctx, seedOrgID)
	if err != nil {
		return fmt.Errorf("error checking for existing seed organization: %w", err)
	}
	if existing != nil {
		utils.Logger.Infof("Demo organization already exists (ID=%s); skipping seed.", existing.ID)
		return nil
	}

	org := &models.Organization{
		ID:           seedOrgID,
		Name:         "Lakeside Holdings",
		ContactEmail: "office@lakesideholdings.example.com",
		ContactPhone: utils.Ptr("+12565550100"),
		Address:      "100 Commerce Way",
		City:         "Huntsville",
		State:        "AL",
		ZipCode:      "35801",
	}
	if err := s.OrgRepo.Create(ctx, org); err != nil {
		return fmt.Errorf("failed to seed organization: %w", err)
	}

	entities := []*models.Entity{
		{
			ID:             seedEntityAID,
			OrganizationID: seedOrgID,
			Name:           "Lakeside Residential",
			LegalName:      "Lakeside Residential LLC",
			TaxID:          utils.Ptr("63-1234567"),
		},
		{
			ID:             seedEntityBID,
			OrganizationID: seedOrgID,
			Name:           "Lakeside Commercial",
			LegalName:      "Lakeside Commercial LLC",
		},
	}
	for _, e := range entities {
		if err := s.EntityRepo.Create(ctx, e); err != nil {
			return fmt.Errorf("failed to seed entity %s: %w", e.Name, err)
		}
	}

	properties := []*models.Property{
		{
			ID:           seedPropertyAID,
			EntityID:     seedEntityAID,
			PropertyName: "Birchwood Apartments",
			Address:      "12 Birchwood Ln",
			City:         "Huntsville",
			State:        "AL",
			ZipCode:      "35806",
		},
		{
			ID:           seedPropertyBID,
			EntityID:     seedEntityBID,
			PropertyName: "Gateway Office Park",
			Address:      "400 Gateway Blvd",
			City:         "Madison",
			State:        "AL",
			ZipCode:      "35758",
		},
	}
	for _, p := range properties {
		if err := s.PropertyRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed property %s: %w", p.PropertyName, err)
		}
	}

	spaces := []*models.Space{
		{
			ID:              uuid.New(),
			PropertyID:      seedPropertyAID,
			UnitNumber:      "101",
			SpaceType:       models.SpaceTypeApartment,
			Floor:           utils.Ptr(1),
			SquareFeet:      utils.Ptr(850),
			Bedrooms:        utils.Ptr(2),
			Bathrooms:       utils.Ptr(1.0),
			MarketRentCents: 129500,
		},
		{
			ID:              uuid.New(),
			PropertyID:      seedPropertyAID,
			UnitNumber:      "102",
			SpaceType:       models.SpaceTypeApartment,
			Floor:           utils.Ptr(1),
			SquareFeet:      utils.Ptr(640),
			Bedrooms:        utils.Ptr(1),
			Bathrooms:       utils.Ptr(1.0),
			MarketRentCents: 104500,
		},
		{
			ID:              uuid.New(),
			PropertyID:      seedPropertyBID,
			UnitNumber:      "Suite 210",
			Description:     utils.Ptr("Corner suite, fiber ready"),
			SpaceType:       models.SpaceTypeOffice,
			Floor:           utils.Ptr(2),
			SquareFeet:      utils.Ptr(1400),
			MarketRentCents: 310000,
		},
		{
			ID:              uuid.New(),
			PropertyID:      seedPropertyBID,
			UnitNumber:      "Suite 220",
			SpaceType:       models.SpaceTypeOffice,
			Floor:           utils.Ptr(2),
			SquareFeet:      utils.Ptr(900),
			MarketRentCents: 215000,
		},
	}
	for _, sp := range spaces {
		if err := s.SpaceRepo.Create(ctx, sp); err != nil {
			return fmt.Errorf("failed to seed space %s: %w", sp.UnitNumber, err)
		}
	}

	tenants := []*models.Tenant{
		{
			ID:          uuid.New(),
			FirstName:   "Dana",
			LastName:    "Whitfield",
			Email:       "dana.whitfield@example.com",
			PhoneNumber: utils.Ptr("+12565550171"),
		},
		{
			ID:        uuid.New(),
			FirstName: "Marcus",
			LastName:  "Oyelaran",
			Email:     "marcus.o@example.com",
		},
	}
	for _, t := range tenants {
		if err := s.TenantRepo.Create(ctx, t); err != nil {
			return fmt.Errorf("failed to seed tenant %s: %w", t.Email, err)
		}
	}

	now := time.Now().UTC()
	leases := []*models.Lease{
		{
			ID:               uuid.New(),
			SpaceID:          spaces[0].ID,
			TenantID:         tenants[0].ID,
			StartDate:        now.AddDate(0, -6, 0),
			EndDate:          now.AddDate(0, 6, 0),
			MonthlyRentCents: 129500,
			DepositCents:     129500,
			Status:           models.LeaseStatusActive,
		},
		{
			ID:               uuid.New(),
			SpaceID:          spaces[2].ID,
			TenantID:         tenants[1].ID,
			StartDate:        now.AddDate(-1, 0, 0),
			EndDate:          now.AddDate(1, 0, 0),
			MonthlyRentCents: 310000,
			DepositCents:     620000,
			Status:           models.LeaseStatusActive,
		},
	}
	for _, l := range leases {
		if err := s.LeaseRepo.Create(ctx, l); err != nil {
			return fmt.Errorf("failed to seed lease for space %s: %w", l.SpaceID, err)
		}
	}

	paidInvoice := &models.Invoice{
		ID:            uuid.New(),
		LeaseID:       leases[0].ID,
		InvoiceNumber: "INV-2026-0001",
		AmountCents:   129500,
		IssueDate:     now.AddDate(0, -2, 0),
		DueDate:       now.AddDate(0, -2, 14),
		Status:        models.InvoiceStatusPaid,
	}
	lateInvoice := &models.Invoice{
		ID:            uuid.New(),
		LeaseID:       leases[1].ID,
		InvoiceNumber: "INV-2026-0002",
		AmountCents:   310000,
		IssueDate:     now.AddDate(0, -2, 0),
		DueDate:       now.AddDate(0, -1, -15),
		Status:        models.InvoiceStatusSent,
		Memo:          utils.Ptr("Monthly rent"),
	}
	for _, inv := range []*models.Invoice{paidInvoice, lateInvoice} {
		if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
			return fmt.Errorf("failed to seed invoice %s: %w", inv.InvoiceNumber, err)
		}
	}

	payment := &models.Payment{
		ID:          uuid.New(),
		InvoiceID:   paidInvoice.ID,
		AmountCents: 129500,
		PaidDate:    now.AddDate(0, -2, 10),
		Method:      "ACH",
		Status:      models.PaymentStatusCompleted,
		Reference:   utils.Ptr("ach-83721"),
	}
	if err := s.PaymentRepo.Create(ctx, payment); err != nil {
		return fmt.Errorf("failed to seed payment: %w", err)
	}

	expense := &models.PropertyExpense{
		ID:          uuid.New(),
		PropertyID:  seedPropertyAID,
		Category:    "LANDSCAPING",
		Description: "Spring grounds service",
		AmountCents: 42000,
		ExpenseDate: now.AddDate(0, -1, 0),
	}
	if err := s.ExpenseRepo.Create(ctx, expense); err != nil {
		return fmt.Errorf("failed to seed expense: %w", err)
	}

	request := &models.MaintenanceRequest{
		ID:          uuid.New(),
		PropertyID:  seedPropertyAID,
		SpaceID:     &spaces[0].ID,
		Title:       "Leaking kitchen faucet",
		Description: "Steady drip under the sink, tenant reports water pooling.",
		Status:      models.MaintenanceStatusOpen,
		Priority:    models.MaintenancePriorityMedium,
		RequestedAt: now.AddDate(0, 0, -3),
	}
	if err := s.MaintenanceRepo.Create(ctx, request); err != nil {
		return fmt.Errorf("failed to seed maintenance request: %w", err)
	}

	if err := s.seedUsers(ctx); err != nil {
		return err
	}

	utils.Logger.Infof("Successfully seeded demo organization (ID=%s).", seedOrgID)
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to bcrypt-hash seed password: %w", err)
	}

	users := []*models.User{
		{
			ID:             uuid.New(),
			OrganizationID: seedOrgID,
			Email:          "root@propside.example.com",
			PasswordHash:   string(hashed),
			FirstName:      "Site",
			LastName:       "Admin",
			Role:           models.RoleSuperAdmin,
		},
		{
			ID:             uuid.New(),
			OrganizationID: seedOrgID,
			Email:          "admin@lakesideholdings.example.com",
			PasswordHash:   string(hashed),
			FirstName:      "Olivia",
			LastName:       "Kemp",
			Role:           models.RoleOrgAdmin,
		},
		{
			ID:             uuid.New(),
			OrganizationID: seedOrgID,
			Email:          "residential@lakesideholdings.example.com",
			PasswordHash:   string(hashed),
			FirstName:      "Theo",
			LastName:       "Branch",
			Role:           models.RoleEntityManager,
			EntityIDs:      []uuid.UUID{seedEntityAID},
		},
		{
			ID:             uuid.New(),
			OrganizationID: seedOrgID,
			Email:          "birchwood@lakesideholdings.example.com",
			PasswordHash:   string(hashed),
			FirstName:      "Priya",
			LastName:       "Nair",
			Role:           models.RolePropertyManager,
			PropertyIDs:    []uuid.UUID{seedPropertyAID},
		},
	}

	for _, u := range users {
		if err := s.UserRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		utils.Logger.Infof("Seeded user %s (role=%s)", u.Email, u.Role)
	}
	return nil
}

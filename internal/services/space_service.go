package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/propside/backoffice/internal/auth"
	"github.com/propside/backoffice/internal/constants"
	"github.com/propside/backoffice/internal/dtos"
	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/repositories"
	"github.com/propside/backoffice/internal/utils"
)

// SpaceService runs the rentable-unit CRUD. Every mutation re-runs the
// property scope check before touching storage; unauthorized callers get
// Forbidden with no side effect.
type SpaceService struct {
	resolver  *auth.ScopeResolver
	spaceRepo repositories.SpaceRepository
	leaseRepo repositories.LeaseRepository

	now func() time.Time
}

func NewSpaceService(resolver *auth.ScopeResolver, spaceRepo repositories.SpaceRepository, leaseRepo repositories.LeaseRepository) *SpaceService {
	return &SpaceService{
		resolver:  resolver,
		spaceRepo: spaceRepo,
		leaseRepo: leaseRepo,
		now:       time.Now,
	}
}

// ListFilter is the service-level shape of the list query parameters.
type ListFilter struct {
	PropertyID *uuid.UUID
	Search     string
	SpaceType  *models.SpaceTypeType
	Bedrooms   *int
	Floor      *int
	Available  *bool
	Page       int
	Limit      int
}

func (s *SpaceService) Create(ctx context.Context, actx *auth.Context, req *dtos.CreateSpaceRequest) (*models.Space, error) {
	if _, err := s.resolver.AuthorizeProperty(ctx, actx, req.PropertyID); err != nil {
		return nil, err
	}

	exists, err := s.spaceRepo.ExistsUnitNumber(ctx, req.PropertyID, req.UnitNumber, nil)
	if err != nil {
		return nil, utils.NewInternalError(err)
	}
	if exists {
		return nil, utils.DuplicateUnitLabelError(req.UnitNumber)
	}

	space := &models.Space{
		ID:              uuid.New(),
		PropertyID:      req.PropertyID,
		UnitNumber:      req.UnitNumber,
		Description:     req.Description,
		SpaceType:       models.SpaceTypeType(req.SpaceType),
		Floor:           req.Floor,
		SquareFeet:      req.SquareFeet,
		Bedrooms:        req.Bedrooms,
		Bathrooms:       req.Bathrooms,
		MarketRentCents: dollarsToCents(req.MarketRent),
	}
	if err := s.spaceRepo.Create(ctx, space); err != nil {
		// lost a race against a concurrent create of the same label
		if errors.Is(err, utils.ErrDuplicateRecord) {
			return nil, utils.DuplicateUnitLabelError(req.UnitNumber)
		}
		return nil, utils.NewInternalError(err)
	}
	return space, nil
}

func (s *SpaceService) Get(ctx context.Context, actx *auth.Context, id uuid.UUID) (*models.Space, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError(err)
	}
	if space == nil {
		return nil, utils.NewNotFoundError("space")
	}
	if _, err := s.resolver.AuthorizeProperty(ctx, actx, space.PropertyID); err != nil {
		return nil, err
	}
	return space, nil
}

func (s *SpaceService) Update(ctx context.Context, actx *auth.Context, id uuid.UUID, req *dtos.UpdateSpaceRequest) (*models.Space, error) {
	space, err := s.Get(ctx, actx, id)
	if err != nil {
		return nil, err
	}

	if req.UnitNumber != nil && *req.UnitNumber != space.UnitNumber {
		exists, err := s.spaceRepo.ExistsUnitNumber(ctx, space.PropertyID, *req.UnitNumber, &id)
		if err != nil {
			return nil, utils.NewInternalError(err)
		}
		if exists {
			return nil, utils.DuplicateUnitLabelError(*req.UnitNumber)
		}
	}

	if err := s.spaceRepo.UpdateWithRetry(ctx, id, func(stored *models.Space) error {
		applySpaceUpdate(stored, req)
		return nil
	}); err != nil {
		if errors.Is(err, utils.ErrDuplicateRecord) {
			return nil, utils.DuplicateUnitLabelError(*req.UnitNumber)
		}
		return nil, utils.NewInternalError(err)
	}

	return s.spaceRepo.GetByID(ctx, id)
}

// Delete refuses while any lease on the space is ACTIVE; the record is
// left untouched in that case.
func (s *SpaceService) Delete(ctx context.Context, actx *auth.Context, id uuid.UUID) error {
	space, err := s.Get(ctx, actx, id)
	if err != nil {
		return err
	}

	active, err := s.leaseRepo.CountActiveBySpaceID(ctx, space.ID)
	if err != nil {
		return utils.NewInternalError(err)
	}
	if active > 0 {
		return utils.NewValidationError("space has an active lease and cannot be deleted", utils.ErrSpaceHasActiveLease)
	}

	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		return utils.NewInternalError(err)
	}
	return nil
}

func (s *SpaceService) List(ctx context.Context, actx *auth.Context, f ListFilter) (*dtos.ListSpacesResponse, error) {
	// An explicit property filter is a scoped target in its own right.
	if f.PropertyID != nil {
		if _, err := s.resolver.AuthorizeProperty(ctx, actx, *f.PropertyID); err != nil {
			return nil, err
		}
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = constants.DefaultPageSize
	}
	if f.Limit > constants.MaxPageSize {
		f.Limit = constants.MaxPageSize
	}

	scope := s.resolver.ListScope(actx)
	rows, total, err := s.spaceRepo.List(ctx, scope, repositories.SpaceFilter{
		PropertyID: f.PropertyID,
		Search:     f.Search,
		SpaceType:  f.SpaceType,
		Bedrooms:   f.Bedrooms,
		Floor:      f.Floor,
		Available:  f.Available,
		Page:       f.Page,
		Limit:      f.Limit,
	}, s.now().UTC())
	if err != nil {
		return nil, utils.NewInternalError(err)
	}

	resp := &dtos.ListSpacesResponse{
		Results: make([]dtos.SpaceDTO, 0, len(rows)),
		Page:    f.Page,
		Limit:   f.Limit,
		Total:   total,
	}
	for _, row := range rows {
		dto := SpaceToDTO(row.Space)
		dto.PropertyName = row.PropertyName
		dto.Available = utils.Ptr(!row.Occupied)
		resp.Results = append(resp.Results, dto)
	}
	return resp, nil
}

/* ---------- helpers ---------- */

func SpaceToDTO(space *models.Space) dtos.SpaceDTO {
	return dtos.SpaceDTO{
		ID:          space.ID,
		PropertyID:  space.PropertyID,
		UnitNumber:  space.UnitNumber,
		Description: space.Description,
		SpaceType:   string(space.SpaceType),
		Floor:       space.Floor,
		SquareFeet:  space.SquareFeet,
		Bedrooms:    space.Bedrooms,
		Bathrooms:   space.Bathrooms,
		MarketRent:  utils.CentsToDollars(space.MarketRentCents),
		CreatedAt:   space.CreatedAt,
		UpdatedAt:   space.UpdatedAt,
	}
}

func applySpaceUpdate(stored *models.Space, req *dtos.UpdateSpaceRequest) {
	if req.UnitNumber != nil {
		stored.UnitNumber = *req.UnitNumber
	}
	if req.Description != nil {
		stored.Description = req.Description
	}
	if req.SpaceType != nil {
		stored.SpaceType = models.SpaceTypeType(*req.SpaceType)
	}
	if req.Floor != nil {
		stored.Floor = req.Floor
	}
	if req.SquareFeet != nil {
		stored.SquareFeet = req.SquareFeet
	}
	if req.Bedrooms != nil {
		stored.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms != nil {
		stored.Bathrooms = req.Bathrooms
	}
	if req.MarketRent != nil {
		stored.MarketRentCents = dollarsToCents(*req.MarketRent)
	}
}

func dollarsToCents(d float64) int64 {
	return int64(math.Round(d * 100))
}

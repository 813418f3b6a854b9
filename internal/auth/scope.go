package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/repositories"
	"github.com/propside/backoffice/internal/utils"
)

/*
Scope resolution. The role branching lives here exactly once: each role
that may hold scope has a grant strategy, and every consumer asks the
resolver identically. Roles without a strategy are denied outright —
route-level gating should already have rejected them, this is the
second, defense-in-depth layer.
*/

type grant interface {
	GrantsEntity(actx *Context, e *models.Entity) bool
	GrantsProperty(actx *Context, p *models.Property, owner *models.Entity) bool
}

type superAdminGrant struct{}

func (superAdminGrant) GrantsEntity(*Context, *models.Entity) bool { return true }
func (superAdminGrant) GrantsProperty(*Context, *models.Property, *models.Entity) bool {
	return true
}

type orgAdminGrant struct{}

func (orgAdminGrant) GrantsEntity(actx *Context, e *models.Entity) bool {
	return e.OrganizationID == actx.OrganizationID
}
func (orgAdminGrant) GrantsProperty(actx *Context, _ *models.Property, owner *models.Entity) bool {
	return owner != nil && owner.OrganizationID == actx.OrganizationID
}

type entityManagerGrant struct{}

func (entityManagerGrant) GrantsEntity(actx *Context, e *models.Entity) bool {
	return actx.HasEntity(e.ID)
}
func (entityManagerGrant) GrantsProperty(actx *Context, p *models.Property, _ *models.Entity) bool {
	return actx.HasEntity(p.EntityID)
}

// propertyManagerGrant covers property-scoped operations only; entity-wide
// reports stay off limits for the role.
type propertyManagerGrant struct{}

func (propertyManagerGrant) GrantsEntity(*Context, *models.Entity) bool { return false }
func (propertyManagerGrant) GrantsProperty(actx *Context, p *models.Property, _ *models.Entity) bool {
	return actx.HasProperty(p.ID)
}

var grants = map[models.RoleType]grant{
	models.RoleSuperAdmin:      superAdminGrant{},
	models.RoleOrgAdmin:        orgAdminGrant{},
	models.RoleEntityManager:   entityManagerGrant{},
	models.RolePropertyManager: propertyManagerGrant{},
}

/* ───────────── resolver ───────────── */

type ScopeResolver struct {
	entityRepo   repositories.EntityRepository
	propertyRepo repositories.PropertyRepository
}

func NewScopeResolver(entityRepo repositories.EntityRepository, propertyRepo repositories.PropertyRepository) *ScopeResolver {
	return &ScopeResolver{entityRepo: entityRepo, propertyRepo: propertyRepo}
}

// AuthorizeEntity loads the entity and checks the caller's grant against
// it. The loaded entity is returned so callers avoid a second fetch.
// Read-only; a failure here aborts the whole requested operation.
func (s *ScopeResolver) AuthorizeEntity(ctx context.Context, actx *Context, entityID uuid.UUID) (*models.Entity, error) {
	e, err := s.entityRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, utils.NewInternalError(err)
	}
	if e == nil {
		return nil, utils.NewNotFoundError("entity")
	}

	g, ok := grants[actx.Role]
	if !ok || !g.GrantsEntity(actx, e) {
		return nil, utils.NewForbiddenError("role does not grant access to this entity")
	}
	return e, nil
}

// AuthorizeProperty loads the property (and, for the org-scoped roles,
// its owning entity) and checks the caller's grant. Used by the space
// CRUD service before every mutation.
func (s *ScopeResolver) AuthorizeProperty(ctx context.Context, actx *Context, propertyID uuid.UUID) (*models.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, utils.NewInternalError(err)
	}
	if p == nil {
		return nil, utils.NewNotFoundError("property")
	}

	g, ok := grants[actx.Role]
	if !ok {
		return nil, utils.NewForbiddenError("role does not grant access to this property")
	}

	// Only the org-admin grant needs the owning entity; skip the lookup
	// for everyone else.
	var owner *models.Entity
	if actx.Role == models.RoleOrgAdmin {
		owner, err = s.entityRepo.GetByID(ctx, p.EntityID)
		if err != nil {
			return nil, utils.NewInternalError(err)
		}
	}

	if !g.GrantsProperty(actx, p, owner) {
		return nil, utils.NewForbiddenError("role does not grant access to this property")
	}
	return p, nil
}

// ListScope narrows space listings to the caller's permitted slice of the
// tenancy tree without per-row authorization calls.
func (s *ScopeResolver) ListScope(actx *Context) repositories.SpaceScope {
	switch actx.Role {
	case models.RoleSuperAdmin:
		return repositories.SpaceScope{All: true}
	case models.RoleOrgAdmin:
		orgID := actx.OrganizationID
		return repositories.SpaceScope{OrganizationID: &orgID}
	case models.RoleEntityManager:
		return repositories.SpaceScope{EntityIDs: actx.EntityIDs}
	case models.RolePropertyManager:
		return repositories.SpaceScope{PropertyIDs: actx.PropertyIDs}
	default:
		// empty scope: matches nothing
		return repositories.SpaceScope{}
	}
}

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/utils"
)

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

type scopeFixture struct {
	resolver *ScopeResolver

	orgID      uuid.UUID
	otherOrgID uuid.UUID
	entityID   uuid.UUID
	otherID    uuid.UUID
	propertyID uuid.UUID
}

func newScopeFixture() *scopeFixture {
	f := &scopeFixture{
		orgID:      uuid.New(),
		otherOrgID: uuid.New(),
		entityID:   uuid.New(),
		otherID:    uuid.New(),
		propertyID: uuid.New(),
	}

	entityRepo := &fakeEntityRepo{entities: map[uuid.UUID]*models.Entity{
		f.entityID: {ID: f.entityID, OrganizationID: f.orgID, Name: "Residential"},
		f.otherID:  {ID: f.otherID, OrganizationID: f.otherOrgID, Name: "Foreign"},
	}}
	propertyRepo := &fakePropertyRepo{properties: map[uuid.UUID]*models.Property{
		f.propertyID: {ID: f.propertyID, EntityID: f.entityID, PropertyName: "Birchwood"},
	}}

	f.resolver = NewScopeResolver(entityRepo, propertyRepo)
	return f
}

func TestAuthorizeEntitySuperAdmin(t *testing.T) {
	f := newScopeFixture()
	actx := &Context{UserID: uuid.New(), Role: models.RoleSuperAdmin}

	e, err := f.resolver.AuthorizeEntity(context.Background(), actx, f.entityID)
	require.NoError(t, err)
	require.Equal(t, f.entityID, e.ID)

	// cross-org is still fine for super admin
	e, err = f.resolver.AuthorizeEntity(context.Background(), actx, f.otherID)
	require.NoError(t, err)
	require.Equal(t, f.otherID, e.ID)
}

func TestAuthorizeEntityOrgAdmin(t *testing.T) {
	f := newScopeFixture()
	actx := &Context{UserID: uuid.New(), Role: models.RoleOrgAdmin, OrganizationID: f.orgID}

	e, err := f.resolver.AuthorizeEntity(context.Background(), actx, f.entityID)
	require.NoError(t, err)
	require.Equal(t, f.entityID, e.ID)

	_, err = f.resolver.AuthorizeEntity(context.Background(), actx, f.otherID)
	require.Error(t, err)
	require.True(t, errors.Is(err, utils.ErrForbidden))
}

func TestAuthorizeEntityEntityManager(t *testing.T) {
	f := newScopeFixture()
	granted := &Context{UserID: uuid.New(), Role: models.RoleEntityManager, EntityIDs: []uuid.UUID{f.entityID}}
	ungranted := &Context{UserID: uuid.New(), Role: models.RoleEntityManager, EntityIDs: []uuid.UUID{uuid.New()}}

	_, err := f.resolver.AuthorizeEntity(context.Background(), granted, f.entityID)
	require.NoError(t, err)

	_, err = f.resolver.AuthorizeEntity(context.Background(), ungranted, f.entityID)
	require.True(t, errors.Is(err, utils.ErrForbidden))
}

func TestAuthorizeEntityPropertyManagerDenied(t *testing.T) {
	f := newScopeFixture()
	actx := &Context{UserID: uuid.New(), Role: models.RolePropertyManager, PropertyIDs: []uuid.UUID{f.propertyID}}

	_, err := f.resolver.AuthorizeEntity(context.Background(), actx, f.entityID)
	require.True(t, errors.Is(err, utils.ErrForbidden))
}

func TestAuthorizeEntityUnknownRoleDenied(t *testing.T) {
	f := newScopeFixture()
	for _, role := range []models.RoleType{models.RoleAccountant, models.RoleMaintenance, models.RoleTenant} {
		actx := &Context{UserID: uuid.New(), Role: role, OrganizationID: f.orgID}
		_, err := f.resolver.AuthorizeEntity(context.Background(), actx, f.entityID)
		require.True(t, errors.Is(err, utils.ErrForbidden), "role %s must be denied", role)
	}
}

func TestAuthorizeEntityNotFound(t *testing.T) {
	f := newScopeFixture()
	actx := &Context{UserID: uuid.New(), Role: models.RoleSuperAdmin}

	_, err := f.resolver.AuthorizeEntity(context.Background(), actx, uuid.New())
	require.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestAuthorizePropertyPerRole(t *testing.T) {
	f := newScopeFixture()

	cases := []struct {
		name    string
		actx    *Context
		allowed bool
	}{
		{"super admin", &Context{Role: models.RoleSuperAdmin}, true},
		{"org admin same org", &Context{Role: models.RoleOrgAdmin, OrganizationID: f.orgID}, true},
		{"org admin other org", &Context{Role: models.RoleOrgAdmin, OrganizationID: f.otherOrgID}, false},
		{"entity manager granted", &Context{Role: models.RoleEntityManager, EntityIDs: []uuid.UUID{f.entityID}}, true},
		{"entity manager ungranted", &Context{Role: models.RoleEntityManager, EntityIDs: []uuid.UUID{uuid.New()}}, false},
		{"property manager granted", &Context{Role: models.RolePropertyManager, PropertyIDs: []uuid.UUID{f.propertyID}}, true},
		{"property manager ungranted", &Context{Role: models.RolePropertyManager, PropertyIDs: []uuid.UUID{uuid.New()}}, false},
		{"tenant", &Context{Role: models.RoleTenant}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.actx.UserID = uuid.New()
			p, err := f.resolver.AuthorizeProperty(context.Background(), tc.actx, f.propertyID)
			if tc.allowed {
				require.NoError(t, err)
				require.Equal(t, f.propertyID, p.ID)
			} else {
				require.True(t, errors.Is(err, utils.ErrForbidden))
			}
		})
	}
}

func TestAuthorizePropertyNotFound(t *testing.T) {
	f := newScopeFixture()
	actx := &Context{UserID: uuid.New(), Role: models.RoleSuperAdmin}

	_, err := f.resolver.AuthorizeProperty(context.Background(), actx, uuid.New())
	require.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestListScopePerRole(t *testing.T) {
	f := newScopeFixture()

	scope := f.resolver.ListScope(&Context{Role: models.RoleSuperAdmin})
	require.True(t, scope.All)

	scope = f.resolver.ListScope(&Context{Role: models.RoleOrgAdmin, OrganizationID: f.orgID})
	require.NotNil(t, scope.OrganizationID)
	require.Equal(t, f.orgID, *scope.OrganizationID)

	scope = f.resolver.ListScope(&Context{Role: models.RoleEntityManager, EntityIDs: []uuid.UUID{f.entityID}})
	require.Equal(t, []uuid.UUID{f.entityID}, scope.EntityIDs)

	scope = f.resolver.ListScope(&Context{Role: models.RolePropertyManager, PropertyIDs: []uuid.UUID{f.propertyID}})
	require.Equal(t, []uuid.UUID{f.propertyID}, scope.PropertyIDs)

	scope = f.resolver.ListScope(&Context{Role: models.RoleAccountant})
	require.False(t, scope.All)
	require.Nil(t, scope.OrganizationID)
	require.Empty(t, scope.EntityIDs)
	require.Empty(t, scope.PropertyIDs)
}

package auth

import (
	"github.com/google/uuid"

	"github.com/propside/backoffice/internal/models"
)

// Context is the caller's verified identity and scope, built exactly once
// by the JWT middleware from validated token claims. Everything downstream
// receives it by reference and never recomputes it mid-request.
type Context struct {
	UserID         uuid.UUID
	Role           models.RoleType
	OrganizationID uuid.UUID
	EntityIDs      []uuid.UUID
	PropertyIDs    []uuid.UUID
}

// HasEntity reports whether the caller's managed-entity set contains id.
func (a *Context) HasEntity(id uuid.UUID) bool {
	for _, eid := range a.EntityIDs {
		if eid == id {
			return true
		}
	}
	return false
}

// HasProperty reports whether the caller's managed-property set contains id.
func (a *Context) HasProperty(id uuid.UUID) bool {
	for _, pid := range a.PropertyIDs {
		if pid == id {
			return true
		}
	}
	return false
}

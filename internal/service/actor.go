package service

import (
	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
)

// Actor identifies who is performing an operation. It is resolved once at
// the session boundary (JWT claims) and passed explicitly; services never
// read identity or tenant from ambient state.
type Actor struct {
	EmployeeID uuid.UUID
	CompanyID  uuid.UUID
	Role       models.EmployeeRole
}

// HasRole reports whether the actor holds one of the given roles. ADMIN
// passes every role check.
func (a Actor) HasRole(roles ...models.EmployeeRole) bool {
	if a.Role == models.RoleAdmin {
		return true
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

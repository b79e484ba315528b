package services

import (
	"fmt"

	"lab_dashboard/internal/models"
	"lab_dashboard/internal/tracking"
)

// Scope is the role context supplied with every dashboard request.
// Resolution of the scope (session, tokens) happens upstream; the service
// only applies it as a row filter.
type Scope struct {
	Role           string `json:"role"`
	Coordinator    string `json:"coordinator"`
	Representative string `json:"representative"`
}

// Allows reports whether the scope may see the given row. Admins see
// everything; coordinators and representatives see their own clients'
// orders. An unrecognized role sees nothing.
func (s Scope) Allows(o *tracking.UnifiedOrder) bool {
	switch s.Role {
	case string(models.RoleAdmin):
		return true
	case string(models.RoleCoordinator):
		return o.CoordinatorName == s.Coordinator
	case string(models.RoleRepresentative):
		return o.RepresentativeName == s.Representative
	}
	return false
}

// CanEditStages reports whether the scope may edit stage dates.
func (s Scope) CanEditStages() bool {
	return s.Role == string(models.RoleAdmin) || s.Role == string(models.RoleCoordinator)
}

// CanEditBilling reports whether the scope may edit billing fields.
func (s Scope) CanEditBilling() bool {
	return s.Role == string(models.RoleAdmin)
}

// CacheKey identifies the scope for summary caching.
func (s Scope) CacheKey() string {
	return fmt.Sprintf("%s:%s:%s", s.Role, s.Coordinator, s.Representative)
}

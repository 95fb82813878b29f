package service

import (
	"context"

	idmodels "innflow/internal/identity/models"
	dErrors "innflow/pkg/domain-errors"
)

// Scope is a reviewer's visibility. Global admins see every department;
// department admins see only their own.
type Scope struct {
	ActorID      int64
	Global       bool
	DepartmentID int64
}

// CanAccess reports whether a request in the given department is visible.
func (s Scope) CanAccess(departmentID int64) bool {
	return s.Global || s.DepartmentID == departmentID
}

// department returns the aggregation constraint for this scope, nil when
// unconstrained.
func (s Scope) department() *int64 {
	if s.Global {
		return nil
	}
	dept := s.DepartmentID
	return &dept
}

// ResolveScope derives the caller's review scope from their roles. Global
// admins get an unconstrained scope. Department admins are pinned to their
// active department binding; an admin without one cannot review anything.
func (s *Service) ResolveScope(ctx context.Context, actorID int64) (Scope, error) {
	roles, err := s.deps.Users.Roles(ctx, actorID)
	if err != nil {
		return Scope{}, err
	}
	if idmodels.HasRole(roles, idmodels.RoleGlobalAdmin) {
		return Scope{ActorID: actorID, Global: true}, nil
	}
	if !idmodels.HasRole(roles, idmodels.RoleDepartmentAdmin) {
		return Scope{}, dErrors.New(dErrors.CodeForbidden, "reviewing requires an admin role")
	}
	deptID, err := s.deps.Users.ActiveDepartment(ctx, actorID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return Scope{}, dErrors.New(dErrors.CodeForbidden, "department admin has no active department")
		}
		return Scope{}, err
	}
	return Scope{ActorID: actorID, DepartmentID: deptID}, nil
}

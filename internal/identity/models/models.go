// Package models holds the identity-side domain types: users, roles, and the
// department bindings that scope administrators.
package models

import "time"

// Role is a coarse authorization label attached to a user.
type Role string

const (
	// RoleEndUser is the generic role every self-registered account starts with.
	RoleEndUser Role = "user"
	// RolePropertyAdmin grants management rights over bound properties.
	RolePropertyAdmin Role = "property_admin"
	// RoleDepartmentAdmin grants review rights scoped to one department.
	RoleDepartmentAdmin Role = "department_admin"
	// RoleGlobalAdmin grants unscoped review rights.
	RoleGlobalAdmin Role = "admin"
)

// User is an identity record. PasswordHash is always a bcrypt hash; the
// directory never sees plaintext.
type User struct {
	ID           int64
	Email        string
	FullName     string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// DepartmentBinding links a department administrator to the single department
// they review. A user has at most one active binding.
type DepartmentBinding struct {
	ID           int64
	UserID       int64
	DepartmentID int64
	Primary      bool
	Active       bool
	CreatedAt    time.Time
}

// HasRole reports whether the role set contains r.
func HasRole(roles []Role, r Role) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}

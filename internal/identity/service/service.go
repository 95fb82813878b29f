// Package service implements the user directory consumed by the onboarding
// workflow: find-by-email, create, and role management.
package service

import (
	"context"
	"log/slog"
	"strings"

	"innflow/internal/identity/models"
	dErrors "innflow/pkg/domain-errors"
	"innflow/pkg/email"
)

// Store is the persistence interface the directory needs.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	Roles(ctx context.Context, userID int64) ([]models.Role, error)
	AddRole(ctx context.Context, userID int64, role models.Role) error
	RemoveRole(ctx context.Context, userID int64, role models.Role) error
	ActiveDepartment(ctx context.Context, userID int64) (int64, error)
	DepartmentAdmins(ctx context.Context, departmentID int64) ([]models.User, error)
}

// Directory exposes identity operations to other modules.
type Directory struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Directory)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Directory) { d.logger = logger }
}

func New(store Store, opts ...Option) *Directory {
	d := &Directory{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FindByEmail resolves an identity by address. Absence is not an error: the
// caller branches on a nil user.
func (d *Directory) FindByEmail(ctx context.Context, address string) (*models.User, error) {
	address = email.Normalize(address)
	if address == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "email is required")
	}
	user, err := d.store.FindByEmail(ctx, address)
	if dErrors.HasCode(err, dErrors.CodeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}
	return user, nil
}

// Create registers a new identity with an already-hashed password and assigns
// the given roles. Duplicate emails surface as a conflict.
func (d *Directory) Create(ctx context.Context, user *models.User, roles ...models.Role) (int64, error) {
	user.Email = email.Normalize(user.Email)
	if user.Email == "" {
		return 0, dErrors.New(dErrors.CodeBadRequest, "email is required")
	}
	if user.PasswordHash == "" {
		return 0, dErrors.New(dErrors.CodeBadRequest, "password hash is required")
	}
	if strings.TrimSpace(user.FullName) == "" {
		first, last := email.DeriveNameFromEmail(user.Email)
		user.FullName = first + " " + last
	}

	id, err := d.store.Create(ctx, user)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			return 0, err
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	for _, role := range roles {
		if err := d.store.AddRole(ctx, id, role); err != nil {
			return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to assign role")
		}
	}

	d.logger.InfoContext(ctx, "user created", "user_id", id, "roles", roles)
	return id, nil
}

func (d *Directory) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return d.store.FindByID(ctx, id)
}

func (d *Directory) Roles(ctx context.Context, userID int64) ([]models.Role, error) {
	roles, err := d.store.Roles(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to query roles")
	}
	return roles, nil
}

func (d *Directory) AddRole(ctx context.Context, userID int64, role models.Role) error {
	if err := d.store.AddRole(ctx, userID, role); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add role")
	}
	return nil
}

func (d *Directory) RemoveRole(ctx context.Context, userID int64, role models.Role) error {
	if err := d.store.RemoveRole(ctx, userID, role); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove role")
	}
	return nil
}

// ActiveDepartment returns the department a scoped administrator is bound to.
func (d *Directory) ActiveDepartment(ctx context.Context, userID int64) (int64, error) {
	return d.store.ActiveDepartment(ctx, userID)
}

// DepartmentAdmins lists the administrators bound to a department, for
// new-request notifications.
func (d *Directory) DepartmentAdmins(ctx context.Context, departmentID int64) ([]models.User, error) {
	return d.store.DepartmentAdmins(ctx, departmentID)
}

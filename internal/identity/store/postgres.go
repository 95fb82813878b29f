package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"innflow/internal/identity/models"
	dErrors "innflow/pkg/domain-errors"
	txcontext "innflow/pkg/platform/tx"
)

// Postgres persists users, roles, and department bindings. All statements go
// through the context transaction when one is in flight so identity mutations
// join the approval unit of work.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, email, full_name, phone, password_hash, created_at
		FROM users
		WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row := txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, email, full_name, phone, password_hash, created_at
		FROM users
		WHERE id = $1`, id)
	return scanUser(row)
}

func (s *Postgres) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO users (email, full_name, phone, password_hash, created_at)
		VALUES (lower($1), $2, $3, $4, now())
		RETURNING id`,
		user.Email, user.FullName, user.Phone, user.PasswordHash,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (s *Postgres) Roles(ctx context.Context, userID int64) ([]models.Role, error) {
	rows, err := txcontext.Executor(ctx, s.db).QueryContext(ctx, `
		SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`, userID)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var r string
		if err := rows.Scan(&r); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, models.Role(r))
	}
	return roles, rows.Err()
}

func (s *Postgres) AddRole(ctx context.Context, userID int64, role models.Role) error {
	_, err := txcontext.Executor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role) DO NOTHING`, userID, string(role))
	if err != nil {
		return fmt.Errorf("add role: %w", err)
	}
	return nil
}

func (s *Postgres) RemoveRole(ctx context.Context, userID int64, role models.Role) error {
	_, err := txcontext.Executor(ctx, s.db).ExecContext(ctx, `
		DELETE FROM user_roles WHERE user_id = $1 AND role = $2`, userID, string(role))
	if err != nil {
		return fmt.Errorf("remove role: %w", err)
	}
	return nil
}

// ActiveDepartment returns the single active department binding for a user.
func (s *Postgres) ActiveDepartment(ctx context.Context, userID int64) (int64, error) {
	var deptID int64
	err := txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		SELECT department_id
		FROM department_admins
		WHERE user_id = $1 AND active
		ORDER BY is_primary DESC, id
		LIMIT 1`, userID).Scan(&deptID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, dErrors.New(dErrors.CodeNotFound, "no active department binding")
	}
	if err != nil {
		return 0, fmt.Errorf("query department binding: %w", err)
	}
	return deptID, nil
}

// DepartmentAdmins lists users actively bound to a department.
func (s *Postgres) DepartmentAdmins(ctx context.Context, departmentID int64) ([]models.User, error) {
	rows, err := txcontext.Executor(ctx, s.db).QueryContext(ctx, `
		SELECT u.id, u.email, u.full_name, u.phone, u.password_hash, u.created_at
		FROM users u
		JOIN department_admins da ON da.user_id = u.id
		WHERE da.department_id = $1 AND da.active
		ORDER BY u.id`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("query department admins: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan department admin: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

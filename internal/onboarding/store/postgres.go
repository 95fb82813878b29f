package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"innflow/internal/onboarding/models"
	dErrors "innflow/pkg/domain-errors"
	txcontext "innflow/pkg/platform/tx"
)

// Postgres persists registration requests. The unique-pending-email invariant
// lives in the database as a partial unique index:
//
//	CREATE UNIQUE INDEX registration_requests_pending_email
//	ON registration_requests (lower(email)) WHERE status = 0;
//
// Terminal transitions are conditional updates on status = 0 so two
// concurrent reviewers cannot both win.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const requestColumns = `
	id, full_name, email, phone, password_hash,
	property_name, description, address, latitude, longitude,
	base_price, max_guests, bedrooms, bathrooms, department_id, unit_type_id,
	image_keys, image_count, image_status, image_error, images_processed_at,
	status, submitted_at, reviewed_at, reviewed_by, rejection_reason,
	created_user_id, created_property_id`

func (s *Postgres) Create(ctx context.Context, r *models.RegistrationRequest) (int64, error) {
	keys, err := models.EncodeImageKeys(r.ImageKeys)
	if err != nil {
		return 0, err
	}

	var id int64
	err = txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO registration_requests (
			full_name, email, phone, password_hash,
			property_name, description, address, latitude, longitude,
			base_price, max_guests, bedrooms, bathrooms, department_id, unit_type_id,
			image_keys, image_count, image_status, image_error,
			status, submitted_at
		) VALUES (
			$1, lower($2), $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19,
			$20, now()
		)
		RETURNING id`,
		r.FullName, r.Email, r.Phone, r.PasswordHash,
		r.PropertyName, r.Description, r.Address, r.Latitude, r.Longitude,
		r.BasePrice, r.MaxGuests, r.Bedrooms, r.Bathrooms, r.DepartmentID, r.UnitTypeID,
		keys, r.ImageCount, int16(r.ImageStatus), nullString(r.ImageError),
		int16(r.Status),
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, dErrors.New(dErrors.CodeConflict, "a pending request already exists for this email")
		}
		return 0, fmt.Errorf("insert registration request: %w", err)
	}
	return id, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.RegistrationRequest, error) {
	row := txcontext.Executor(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM registration_requests WHERE id = $1`, id)
	return scanRequest(row.Scan)
}

func (s *Postgres) HasPendingByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM registration_requests
			WHERE lower(email) = lower($1) AND status = 0
		)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check pending email: %w", err)
	}
	return exists, nil
}

func (s *Postgres) List(ctx context.Context, filter models.RequestFilter) ([]models.RegistrationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM registration_requests WHERE 1=1`
	args := []any{}
	if filter.Status != nil {
		args = append(args, int16(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		query += fmt.Sprintf(" AND department_id = $%d", len(args))
	}
	query += " ORDER BY submitted_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := txcontext.Executor(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registration requests: %w", err)
	}
	defer rows.Close()

	var requests []models.RegistrationRequest
	for rows.Next() {
		r, err := scanRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *r)
	}
	return requests, rows.Err()
}

// UpdateImages persists a pipeline outcome in one statement, independent of
// how many images survived.
func (s *Postgres) UpdateImages(ctx context.Context, id int64, keys []string, status models.ImageStatus, errSummary string, processedAt time.Time) error {
	encoded, err := models.EncodeImageKeys(keys)
	if err != nil {
		return err
	}
	res, err := txcontext.Executor(ctx, s.db).ExecContext(ctx, `
		UPDATE registration_requests
		SET image_keys = $2, image_count = $3, image_status = $4,
		    image_error = $5, images_processed_at = $6
		WHERE id = $1`,
		id, encoded, len(keys), int16(status), nullString(errSummary), processedAt)
	if err != nil {
		return fmt.Errorf("update request images: %w", err)
	}
	return requireRow(res)
}

func (s *Postgres) SetImageStatus(ctx context.Context, id int64, status models.ImageStatus) error {
	res, err := txcontext.Executor(ctx, s.db).ExecContext(ctx, `
		UPDATE registration_requests SET image_status = $2 WHERE id = $1`,
		id, int16(status))
	if err != nil {
		return fmt.Errorf("set image status: %w", err)
	}
	return requireRow(res)
}

// MarkApproved is the conditional Pending→Approved flip. Zero rows affected
// means another reviewer already decided; callers surface that as a conflict.
func (s *Postgres) MarkApproved(ctx context.Context, id, reviewedBy int64, reviewedAt time.Time, userID, propertyID int64) error {
	res, err := txcontext.Executor(ctx, s.db).ExecContext(ctx, `
		UPDATE registration_requests
		SET status = $2, reviewed_at = $3, reviewed_by = $4,
		    created_user_id = $5, created_property_id = $6
		WHERE id = $1 AND status = 0`,
		id, int16(models.StatusApproved), reviewedAt, reviewedBy, userID, propertyID)
	if err != nil {
		return fmt.Errorf("mark approved: %w", err)
	}
	return requireDecision(res)
}

// MarkRejected is the conditional Pending→Rejected flip.
func (s *Postgres) MarkRejected(ctx context.Context, id, reviewedBy int64, reviewedAt time.Time, reason string) error {
	res, err := txcontext.Executor(ctx, s.db).ExecContext(ctx, `
		UPDATE registration_requests
		SET status = $2, reviewed_at = $3, reviewed_by = $4, rejection_reason = $5
		WHERE id = $1 AND status = 0`,
		id, int16(models.StatusRejected), reviewedAt, reviewedBy, reason)
	if err != nil {
		return fmt.Errorf("mark rejected: %w", err)
	}
	return requireDecision(res)
}

func (s *Postgres) Delete(ctx context.Context, id int64) error {
	res, err := txcontext.Executor(ctx, s.db).ExecContext(ctx, `
		DELETE FROM registration_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete registration request: %w", err)
	}
	return requireRow(res)
}

// Aggregate computes the statistics read model, optionally scoped to one
// department.
func (s *Postgres) Aggregate(ctx context.Context, departmentID *int64) (*models.Statistics, error) {
	stats := &models.Statistics{
		ByStatus:     make(map[models.Status]int),
		ByDepartment: make(map[int64]int),
		ByUnitType:   make(map[int64]int),
	}
	exec := txcontext.Executor(ctx, s.db)

	where, args := "", []any{}
	if departmentID != nil {
		where = " WHERE department_id = $1"
		args = append(args, *departmentID)
	}

	rows, err := exec.QueryContext(ctx, `
		SELECT status, department_id, unit_type_id, count(*)
		FROM registration_requests`+where+`
		GROUP BY status, department_id, unit_type_id`, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate requests: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status int16
		var deptID, unitTypeID int64
		var count int
		if err := rows.Scan(&status, &deptID, &unitTypeID, &count); err != nil {
			return nil, fmt.Errorf("scan aggregate row: %w", err)
		}
		stats.Total += count
		stats.ByStatus[models.Status(status)] += count
		stats.ByDepartment[deptID] += count
		stats.ByUnitType[unitTypeID] += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = exec.QueryRowContext(ctx, `
		SELECT
			count(*) FILTER (WHERE submitted_at >= now() - INTERVAL '7 days'),
			count(*) FILTER (WHERE submitted_at >= now() - INTERVAL '30 days')
		FROM registration_requests`+where, args...,
	).Scan(&stats.Last7Days, &stats.Last30Days)
	if err != nil {
		return nil, fmt.Errorf("aggregate rolling counts: %w", err)
	}

	return stats, nil
}

func scanRequest(scan func(dest ...any) error) (*models.RegistrationRequest, error) {
	var r models.RegistrationRequest
	var keys string
	var imageStatus, status int16
	var imageError, rejectionReason sql.NullString
	var processedAt, reviewedAt sql.NullTime
	var reviewedBy, createdUserID, createdPropertyID sql.NullInt64

	err := scan(
		&r.ID, &r.FullName, &r.Email, &r.Phone, &r.PasswordHash,
		&r.PropertyName, &r.Description, &r.Address, &r.Latitude, &r.Longitude,
		&r.BasePrice, &r.MaxGuests, &r.Bedrooms, &r.Bathrooms, &r.DepartmentID, &r.UnitTypeID,
		&keys, &r.ImageCount, &imageStatus, &imageError, &processedAt,
		&status, &r.SubmittedAt, &reviewedAt, &reviewedBy, &rejectionReason,
		&createdUserID, &createdPropertyID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dErrors.New(dErrors.CodeNotFound, "registration request not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scan registration request: %w", err)
	}

	r.ImageKeys, err = models.DecodeImageKeys(keys)
	if err != nil {
		return nil, err
	}
	r.ImageStatus = models.ImageStatus(imageStatus)
	r.Status = models.Status(status)
	r.ImageError = imageError.String
	r.RejectionReason = rejectionReason.String
	if processedAt.Valid {
		r.ImagesProcessedAt = &processedAt.Time
	}
	if reviewedAt.Valid {
		r.ReviewedAt = &reviewedAt.Time
	}
	if reviewedBy.Valid {
		r.ReviewedBy = &reviewedBy.Int64
	}
	if createdUserID.Valid {
		r.CreatedUserID = &createdUserID.Int64
	}
	if createdPropertyID.Valid {
		r.CreatedPropertyID = &createdPropertyID.Int64
	}
	return &r, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func requireRow(res sql.Result) error {
	if n, _ := res.RowsAffected(); n == 0 {
		return dErrors.New(dErrors.CodeNotFound, "registration request not found")
	}
	return nil
}

func requireDecision(res sql.Result) error {
	if n, _ := res.RowsAffected(); n == 0 {
		return dErrors.New(dErrors.CodeConflict, "request is no longer pending")
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"innflow/internal/property/models"
	dErrors "innflow/pkg/domain-errors"
	txcontext "innflow/pkg/platform/tx"
)

// Postgres persists properties, admin bindings, availability days, and the
// department/unit-type reference tables. Image keys are stored as a JSON array
// string, mirroring the registration request rows.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FindDepartment(ctx context.Context, id int64) (*models.Department, error) {
	var d models.Department
	err := txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, name, active FROM departments WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dErrors.New(dErrors.CodeNotFound, "department not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query department: %w", err)
	}
	return &d, nil
}

func (s *Postgres) FindUnitType(ctx context.Context, id int64) (*models.UnitType, error) {
	var u models.UnitType
	err := txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, name, active FROM unit_types WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dErrors.New(dErrors.CodeNotFound, "unit type not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query unit type: %w", err)
	}
	return &u, nil
}

func (s *Postgres) CreateProperty(ctx context.Context, p *models.Property) (int64, error) {
	keys, err := models.EncodeImageKeys(p.ImageKeys)
	if err != nil {
		return 0, err
	}
	var id int64
	err = txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO properties (
			department_id, unit_type_id, name, description, address,
			latitude, longitude, base_price, max_guests, bedrooms, bathrooms,
			image_keys, active, verified, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,now())
		RETURNING id`,
		p.DepartmentID, p.UnitTypeID, p.Name, p.Description, p.Address,
		p.Latitude, p.Longitude, p.BasePrice, p.MaxGuests, p.Bedrooms, p.Bathrooms,
		keys, p.Active, p.Verified,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert property: %w", err)
	}
	return id, nil
}

// SetImageKeys replaces a property's image key list after migration from the
// temporary namespace.
func (s *Postgres) SetImageKeys(ctx context.Context, propertyID int64, keys []string) error {
	encoded, err := models.EncodeImageKeys(keys)
	if err != nil {
		return err
	}
	res, err := txcontext.Executor(ctx, s.db).ExecContext(ctx, `
		UPDATE properties SET image_keys = $2 WHERE id = $1`, propertyID, encoded)
	if err != nil {
		return fmt.Errorf("update property images: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return dErrors.New(dErrors.CodeNotFound, "property not found")
	}
	return nil
}

func (s *Postgres) CreateAdminBinding(ctx context.Context, userID, propertyID int64) (int64, error) {
	var id int64
	err := txcontext.Executor(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO property_admins (user_id, property_id, active, created_at)
		VALUES ($1, $2, TRUE, now())
		RETURNING id`, userID, propertyID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert admin binding: %w", err)
	}
	return id, nil
}

// InsertAvailability bulk-inserts seeded calendar days. Conflicting days are
// ignored so re-seeding after a partial failure stays idempotent.
func (s *Postgres) InsertAvailability(ctx context.Context, days []models.AvailabilityDay) error {
	if len(days) == 0 {
		return nil
	}
	exec := txcontext.Executor(ctx, s.db)
	stmt := `
		INSERT INTO availability_days (property_id, date, available, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (property_id, date) DO NOTHING`
	for _, d := range days {
		if _, err := exec.ExecContext(ctx, stmt, d.PropertyID, d.Date, d.Available, d.Price); err != nil {
			return fmt.Errorf("insert availability day: %w", err)
		}
	}
	return nil
}

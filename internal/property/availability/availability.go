// Package availability seeds the forward-looking calendar for a newly
// provisioned property. Seeding is best-effort from the orchestrator's view;
// a failed seed is backfilled later.
package availability

import (
	"context"
	"time"

	"innflow/internal/property/models"
	dErrors "innflow/pkg/domain-errors"
)

// DefaultHorizonDays is how far ahead a new property's calendar is opened.
const DefaultHorizonDays = 365

// Store is the persistence slice the initializer needs.
type Store interface {
	InsertAvailability(ctx context.Context, days []models.AvailabilityDay) error
}

// Initializer seeds availability calendars.
type Initializer struct {
	store Store
	now   func() time.Time
}

type Option func(*Initializer)

// WithClock overrides time.Now; tests pin the seed window.
func WithClock(now func() time.Time) Option {
	return func(i *Initializer) { i.now = now }
}

func New(store Store, opts ...Option) *Initializer {
	i := &Initializer{store: store, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Seed opens horizonDays of availability starting today, all days bookable at
// the base price.
func (i *Initializer) Seed(ctx context.Context, propertyID int64, basePrice float64, horizonDays int) error {
	if propertyID <= 0 {
		return dErrors.New(dErrors.CodeBadRequest, "property id is required")
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	start := i.now().UTC().Truncate(24 * time.Hour)
	days := make([]models.AvailabilityDay, 0, horizonDays)
	for d := 0; d < horizonDays; d++ {
		days = append(days, models.AvailabilityDay{
			PropertyID: propertyID,
			Date:       start.AddDate(0, 0, d),
			Available:  true,
			Price:      basePrice,
		})
	}

	if err := i.store.InsertAvailability(ctx, days); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed availability")
	}
	return nil
}

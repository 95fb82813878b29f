package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innflow/internal/property/store"
	dErrors "innflow/pkg/domain-errors"
)

func TestSeedOpensFullHorizon(t *testing.T) {
	mem := store.NewInMemory()
	fixed := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)
	init := New(mem, WithClock(func() time.Time { return fixed }))

	err := init.Seed(context.Background(), 42, 120.0, 365)
	require.NoError(t, err)

	require.Len(t, mem.Availability, 365)
	first := mem.Availability[0]
	assert.Equal(t, int64(42), first.PropertyID)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.True(t, first.Available)
	assert.Equal(t, 120.0, first.Price)

	last := mem.Availability[364]
	assert.Equal(t, time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC), last.Date)
}

func TestSeedDefaultsHorizon(t *testing.T) {
	mem := store.NewInMemory()
	init := New(mem)

	require.NoError(t, init.Seed(context.Background(), 1, 80, 0))
	assert.Len(t, mem.Availability, DefaultHorizonDays)
}

func TestSeedRequiresProperty(t *testing.T) {
	init := New(store.NewInMemory())
	err := init.Seed(context.Background(), 0, 80, 10)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestSeedWrapsStoreFailure(t *testing.T) {
	mem := store.NewInMemory()
	mem.FailAvailability = true
	init := New(mem)

	err := init.Seed(context.Background(), 1, 80, 10)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}

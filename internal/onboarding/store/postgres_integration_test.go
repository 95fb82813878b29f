//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innflow/internal/onboarding/models"
	"innflow/internal/onboarding/store"
	dErrors "innflow/pkg/domain-errors"
	"innflow/pkg/testutil/containers"
)

func newRequest(email string) *models.RegistrationRequest {
	return &models.RegistrationRequest{
		FullName:     "Maya Petrova",
		Email:        email,
		Phone:        "+35988123456",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		PropertyName: "Seaside Loft",
		BasePrice:    120,
		MaxGuests:    4,
		Bedrooms:     2,
		Bathrooms:    1,
		DepartmentID: 1,
		UnitTypeID:   1,
	}
}

func TestPostgresStore(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	pg.Apply(t, containers.Schema)
	pg.Apply(t, containers.Seed)
	pg.Apply(t, `INSERT INTO users (email, full_name, phone, password_hash) VALUES ('reviewer@innflow.test', 'Reviewer', '', 'x')`)

	s := store.NewPostgres(pg.DB)
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		id, err := s.Create(ctx, newRequest("maya@example.com"))
		require.NoError(t, err)

		got, err := s.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "maya@example.com", got.Email)
		assert.Equal(t, models.StatusPending, got.Status)
		assert.Equal(t, models.ImagePending, got.ImageStatus)
		assert.Empty(t, got.ImageKeys)
		assert.False(t, got.SubmittedAt.IsZero())
	})

	t.Run("duplicate pending email is a conflict", func(t *testing.T) {
		_, err := s.Create(ctx, newRequest("dup@example.com"))
		require.NoError(t, err)

		_, err = s.Create(ctx, newRequest("DUP@example.com"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("rejected email can submit again", func(t *testing.T) {
		id, err := s.Create(ctx, newRequest("again@example.com"))
		require.NoError(t, err)
		require.NoError(t, s.MarkRejected(ctx, id, 1, time.Now(), "incomplete listing"))

		_, err = s.Create(ctx, newRequest("again@example.com"))
		assert.NoError(t, err)
	})

	t.Run("image pipeline outcome is one write", func(t *testing.T) {
		id, err := s.Create(ctx, newRequest("images@example.com"))
		require.NoError(t, err)

		require.NoError(t, s.SetImageStatus(ctx, id, models.ImageProcessing))
		keys := []string{"requests/7/a.webp", "requests/7/c.webp"}
		processedAt := time.Now().UTC()
		require.NoError(t, s.UpdateImages(ctx, id, keys, models.ImageCompleted, "2 of 4 images failed: b.png, d.webp", processedAt))

		got, err := s.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, keys, got.ImageKeys)
		assert.Equal(t, 2, got.ImageCount)
		assert.Equal(t, models.ImageCompleted, got.ImageStatus)
		assert.Contains(t, got.ImageError, "b.png")
		require.NotNil(t, got.ImagesProcessedAt)
	})

	t.Run("only one reviewer wins the approval flip", func(t *testing.T) {
		id, err := s.Create(ctx, newRequest("race@example.com"))
		require.NoError(t, err)

		require.NoError(t, s.MarkApproved(ctx, id, 1, time.Now(), 1, seedProperty(t, pg)))

		err = s.MarkApproved(ctx, id, 1, time.Now(), 1, seedProperty(t, pg))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

		err = s.MarkRejected(ctx, id, 1, time.Now(), "too late")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

		got, err := s.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, got.Status)
		require.NotNil(t, got.ReviewedBy)
		assert.EqualValues(t, 1, *got.ReviewedBy)
		assert.NotNil(t, got.CreatedUserID)
		assert.NotNil(t, got.CreatedPropertyID)
	})

	t.Run("list scoped by department", func(t *testing.T) {
		r := newRequest("scoped@example.com")
		r.DepartmentID = 2
		_, err := s.Create(ctx, r)
		require.NoError(t, err)

		dept := int64(2)
		listed, err := s.List(ctx, models.RequestFilter{DepartmentID: &dept})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "scoped@example.com", listed[0].Email)
	})

	t.Run("aggregate counts by dimension", func(t *testing.T) {
		stats, err := s.Aggregate(ctx, nil)
		require.NoError(t, err)
		assert.Greater(t, stats.Total, 0)
		assert.Equal(t, stats.Total, sumStatuses(stats))
		assert.Equal(t, stats.Total, stats.Last7Days)

		dept := int64(2)
		scoped, err := s.Aggregate(ctx, &dept)
		require.NoError(t, err)
		assert.Equal(t, 1, scoped.Total)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		id, err := s.Create(ctx, newRequest("gone@example.com"))
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, id))

		_, err = s.FindByID(ctx, id)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
		assert.True(t, dErrors.HasCode(s.Delete(ctx, id), dErrors.CodeNotFound))
	})
}

func seedProperty(t *testing.T, pg *containers.PostgresContainer) int64 {
	t.Helper()
	var id int64
	err := pg.DB.QueryRow(`
		INSERT INTO properties (name, base_price, max_guests, bedrooms, bathrooms, department_id, unit_type_id)
		VALUES ('Seaside Loft', 120, 4, 2, 1, 1, 1)
		RETURNING id`).Scan(&id)
	require.NoError(t, err)
	return id
}

func sumStatuses(stats *models.Statistics) int {
	total := 0
	for _, n := range stats.ByStatus {
		total += n
	}
	return total
}

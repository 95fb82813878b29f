package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innflow/internal/media"
	"innflow/internal/onboarding/models"
	dErrors "innflow/pkg/domain-errors"
)

func uploads(names ...string) []media.Upload {
	out := make([]media.Upload, len(names))
	for i, n := range names {
		out[i] = media.Upload{Filename: n, Data: []byte("image-bytes")}
	}
	return out
}

func TestIngestImagesHappyPath(t *testing.T) {
	f := newFixture(t)
	req := f.submit(t, "maya@example.com")

	result, err := f.svc.IngestImages(context.Background(), req.ID, uploads("front.jpg", "garden.png"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Succeeded)
	assert.Zero(t, result.Failed)
	assert.Equal(t, models.ImageCompleted, result.Status)
	expected := []string{
		fmt.Sprintf("requests/%d/front.webp", req.ID),
		fmt.Sprintf("requests/%d/garden.webp", req.ID),
	}
	assert.Equal(t, expected, result.UploadedKeys)
	for _, key := range expected {
		assert.True(t, f.objects.Has(key))
	}

	stored, err := f.requests.FindByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, stored.ImageKeys)
	assert.Equal(t, 2, stored.ImageCount)
	assert.Equal(t, models.ImageCompleted, stored.ImageStatus)
	assert.Empty(t, stored.ImageError)
	require.NotNil(t, stored.ImagesProcessedAt)
}

func TestIngestImagesPartialFailure(t *testing.T) {
	f := newFixture(t)
	req := f.submit(t, "maya@example.com")
	f.transcoder.failOn("b.png", "d.webp")

	result, err := f.svc.IngestImages(context.Background(), req.ID,
		uploads("a.jpg", "b.png", "c.jpg", "d.webp", "e.jpg"))
	require.NoError(t, err)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, []string{"b.png", "d.webp"}, result.FailedFilenames)
	assert.Equal(t, models.ImageCompleted, result.Status)

	stored, err := f.requests.FindByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.ImageCount)
	assert.Equal(t, models.ImageCompleted, stored.ImageStatus)
	assert.Equal(t, "2 of 5 images failed: b.png, d.webp", stored.ImageError)
	// Survivors keep their batch order.
	assert.Equal(t, []string{
		fmt.Sprintf("requests/%d/a.webp", req.ID),
		fmt.Sprintf("requests/%d/c.webp", req.ID),
		fmt.Sprintf("requests/%d/e.webp", req.ID),
	}, stored.ImageKeys)
}

func TestIngestImagesTotalFailure(t *testing.T) {
	f := newFixture(t)
	req := f.submit(t, "maya@example.com")
	f.transcoder.failOn("a.jpg", "b.jpg")

	result, err := f.svc.IngestImages(context.Background(), req.ID, uploads("a.jpg", "b.jpg"))
	require.NoError(t, err)

	assert.Equal(t, models.ImageFailed, result.Status)
	assert.Zero(t, result.Succeeded)

	stored, err := f.requests.FindByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ImageFailed, stored.ImageStatus)
	assert.Empty(t, stored.ImageKeys)
	assert.Zero(t, stored.ImageCount)
}

func TestIngestImagesUploadFailureCountsAsFailed(t *testing.T) {
	f := newFixture(t)
	req := f.submit(t, "maya@example.com")
	f.objects.FailUpload = true

	result, err := f.svc.IngestImages(context.Background(), req.ID, uploads("a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, models.ImageFailed, result.Status)
	assert.Equal(t, []string{"a.jpg"}, result.FailedFilenames)
}

func TestIngestImagesRejectsInvalidBatch(t *testing.T) {
	f := newFixture(t)
	req := f.submit(t, "maya@example.com")

	tests := []struct {
		name  string
		batch []media.Upload
	}{
		{"empty batch", nil},
		{"too many images", uploads(manyNames(media.MaxBatchSize + 1)...)},
		{"unsupported format", uploads("floorplan.pdf")},
		{"empty file", []media.Upload{{Filename: "a.jpg"}}},
		{"colliding names", uploads("front.jpg", "front.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.IngestImages(context.Background(), req.ID, tt.batch)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}

	// A rejected batch leaves the request untouched.
	stored, err := f.requests.FindByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ImagePending, stored.ImageStatus)
}

func TestIngestImagesOutcomeWriteFailureUnblocksRequest(t *testing.T) {
	f := newFixture(t)
	req := f.submit(t, "maya@example.com")

	f.requests.FailUpdateImages = true
	_, err := f.svc.IngestImages(context.Background(), req.ID, uploads("front.jpg"))
	require.Error(t, err)

	// The request must not be stuck in Processing and staged objects are gone.
	stored, err := f.requests.FindByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ImageFailed, stored.ImageStatus)
	assert.Empty(t, f.objects.KeysWithPrefix(fmt.Sprintf("requests/%d", req.ID)))

	// A later batch goes through once the store recovers.
	f.requests.FailUpdateImages = false
	result, err := f.svc.IngestImages(context.Background(), req.ID, uploads("front.jpg"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, models.ImageCompleted, result.Status)
}

func TestIngestImagesRequiresPendingRequest(t *testing.T) {
	f := newFixture(t)
	adminID := f.addGlobalAdmin(t, "root@innflow.test")
	req := f.submit(t, "maya@example.com")
	require.NoError(t, f.svc.Reject(context.Background(), adminID, req.ID, "incomplete"))

	_, err := f.svc.IngestImages(context.Background(), req.ID, uploads("a.jpg"))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func manyNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("img-%d.jpg", i)
	}
	return names
}

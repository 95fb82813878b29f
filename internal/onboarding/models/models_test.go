package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "innflow/pkg/domain-errors"
)

func TestStatusOrdinalsAreStable(t *testing.T) {
	assert.Equal(t, Status(0), StatusPending)
	assert.Equal(t, Status(1), StatusUnderReview)
	assert.Equal(t, Status(2), StatusApproved)
	assert.Equal(t, Status(3), StatusRejected)
	assert.Equal(t, Status(4), StatusCancelled)

	assert.Equal(t, ImageStatus(0), ImagePending)
	assert.Equal(t, ImageStatus(1), ImageProcessing)
	assert.Equal(t, ImageStatus(2), ImageCompleted)
	assert.Equal(t, ImageStatus(3), ImageFailed)
}

func TestReviewed(t *testing.T) {
	assert.False(t, StatusPending.Reviewed())
	assert.False(t, StatusUnderReview.Reviewed())
	assert.True(t, StatusApproved.Reviewed())
	assert.True(t, StatusRejected.Reviewed())
	assert.True(t, StatusCancelled.Reviewed())
}

func TestCanReviewOnlyPending(t *testing.T) {
	for _, status := range []Status{StatusUnderReview, StatusApproved, StatusRejected, StatusCancelled} {
		r := &RegistrationRequest{Status: status}
		err := r.CanReview()
		require.Error(t, err, status.String())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	}
	assert.NoError(t, (&RegistrationRequest{Status: StatusPending}).CanReview())
}

func TestCanDeleteForbidsApproved(t *testing.T) {
	err := (&RegistrationRequest{Status: StatusApproved}).CanDelete()
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

	for _, status := range []Status{StatusPending, StatusUnderReview, StatusRejected, StatusCancelled} {
		assert.NoError(t, (&RegistrationRequest{Status: status}).CanDelete(), status.String())
	}
}

func TestSetImagesKeepsCountMirror(t *testing.T) {
	r := &RegistrationRequest{}
	now := time.Now()
	r.SetImages([]string{"requests/1/a.webp", "requests/1/b.webp"}, ImageCompleted, "", now)

	assert.Equal(t, 2, r.ImageCount)
	assert.Len(t, r.ImageKeys, r.ImageCount)
	assert.Equal(t, ImageCompleted, r.ImageStatus)
	require.NotNil(t, r.ImagesProcessedAt)
	assert.Equal(t, now, *r.ImagesProcessedAt)

	r.SetImages(nil, ImageFailed, "all conversions failed", now)
	assert.Zero(t, r.ImageCount)
	assert.Empty(t, r.ImageKeys)
}

func TestImageKeysRoundTrip(t *testing.T) {
	encoded, err := EncodeImageKeys([]string{"requests/9/x.webp"})
	require.NoError(t, err)
	assert.Equal(t, `["requests/9/x.webp"]`, encoded)

	keys, err := DecodeImageKeys(encoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"requests/9/x.webp"}, keys)
}

func TestEncodeImageKeysEmptyIsArray(t *testing.T) {
	encoded, err := EncodeImageKeys(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestDecodeImageKeysEmptyString(t *testing.T) {
	keys, err := DecodeImageKeys("")
	require.NoError(t, err)
	assert.Nil(t, keys)
}

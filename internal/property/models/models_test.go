package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeImageKeysNeverNull(t *testing.T) {
	encoded, err := EncodeImageKeys(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)

	encoded, err = EncodeImageKeys([]string{"properties/3/front.webp"})
	require.NoError(t, err)
	assert.Equal(t, `["properties/3/front.webp"]`, encoded)
}

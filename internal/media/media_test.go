package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "innflow/pkg/domain-errors"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func TestValidateBatchBounds(t *testing.T) {
	err := ValidateBatch(nil)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	many := make([]Upload, MaxBatchSize+1)
	for i := range many {
		many[i] = Upload{Filename: fmt.Sprintf("a%d.jpg", i), Data: []byte{1}}
	}
	err = ValidateBatch(many)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	ok := many[:MaxBatchSize]
	assert.NoError(t, ValidateBatch(ok))
}

func TestValidateBatchRejectsNameCollision(t *testing.T) {
	err := ValidateBatch([]Upload{
		{Filename: "front.jpg", Data: []byte{1}},
		{Filename: "FRONT.png", Data: []byte{1}},
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "collides")
}

func TestValidateBatchPerImageConstraints(t *testing.T) {
	cases := []struct {
		name   string
		upload Upload
		valid  bool
	}{
		{"jpg ok", Upload{Filename: "a.jpg", Data: []byte{1}}, true},
		{"jpeg ok", Upload{Filename: "a.JPEG", Data: []byte{1}}, true},
		{"png ok", Upload{Filename: "a.png", Data: []byte{1}}, true},
		{"webp ok", Upload{Filename: "a.webp", Data: []byte{1}}, true},
		{"gif rejected", Upload{Filename: "a.gif", Data: []byte{1}}, false},
		{"no extension rejected", Upload{Filename: "afile", Data: []byte{1}}, false},
		{"empty rejected", Upload{Filename: "a.jpg", Data: nil}, false},
		{"oversize rejected", Upload{Filename: "a.jpg", Data: make([]byte, MaxImageBytes+1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBatch([]Upload{tc.upload})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			}
		})
	}
}

func TestValidateBatchNamesEveryProblem(t *testing.T) {
	err := ValidateBatch([]Upload{
		{Filename: "fine.jpg", Data: []byte{1}},
		{Filename: "scan.gif", Data: []byte{1}},
		{Filename: "blank.png", Data: nil},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan.gif")
	assert.Contains(t, err.Error(), "blank.png")
	assert.NotContains(t, err.Error(), "fine.jpg")
}

func TestToWebPFromPNG(t *testing.T) {
	tr := NewTranscoder()
	out, err := tr.ToWebP(Upload{Filename: "p.png", Data: pngBytes(t, 40, 30)})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	decoded, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, decoded.Bounds().Dx())
	assert.Equal(t, 30, decoded.Bounds().Dy())
}

func TestToWebPFromJPEG(t *testing.T) {
	tr := NewTranscoder()
	out, err := tr.ToWebP(Upload{Filename: "p.jpg", Data: jpegBytes(t, 16, 16)})
	require.NoError(t, err)
	_, err = webp.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
}

func TestToWebPPassThroughReencodesWebP(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, webp.Encode(&src, image.NewNRGBA(image.Rect(0, 0, 8, 8)), &webp.Options{Quality: 90}))

	tr := NewTranscoder()
	out, err := tr.ToWebP(Upload{Filename: "p.webp", Data: src.Bytes()})
	require.NoError(t, err)
	_, err = webp.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
}

func TestToWebPRejectsGarbage(t *testing.T) {
	tr := NewTranscoder()
	_, err := tr.ToWebP(Upload{Filename: "corrupt.jpg", Data: []byte("not an image at all")})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "corrupt.jpg")
}

func TestToWebPClampsOversizedImages(t *testing.T) {
	tr := NewTranscoder()
	out, err := tr.ToWebP(Upload{Filename: "wide.png", Data: pngBytes(t, 3000, 100)})
	require.NoError(t, err)

	decoded, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2560, decoded.Bounds().Dx())
}

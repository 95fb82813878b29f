// Package media validates applicant-submitted images and transcodes them to
// WebP before they ever reach the object store. Originals are never persisted.
package media

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	dErrors "innflow/pkg/domain-errors"
)

const (
	// MinBatchSize and MaxBatchSize bound one ingestion call.
	MinBatchSize = 1
	MaxBatchSize = 15
	// MaxImageBytes is the per-image size cap.
	MaxImageBytes = 10 * 1024 * 1024
	// maxDimension clamps decoded images before encoding.
	maxDimension = 2560
	// Quality is the fixed WebP encode quality.
	Quality = 80
)

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Upload is one candidate image as received from the applicant.
type Upload struct {
	Filename string
	Data     []byte
}

// ValidateBatch fails fast before any side effect. All constraints are checked
// so the applicant sees every problem at once.
func ValidateBatch(uploads []Upload) error {
	if len(uploads) < MinBatchSize {
		return dErrors.New(dErrors.CodeValidation, "at least one image is required")
	}
	if len(uploads) > MaxBatchSize {
		return dErrors.Newf(dErrors.CodeValidation, "at most %d images per request", MaxBatchSize)
	}

	var problems []string
	// Stored keys are derived from the name without its extension, so two
	// uploads differing only by extension would overwrite each other.
	seen := make(map[string]string, len(uploads))
	for _, u := range uploads {
		name := filepath.Base(u.Filename)
		if len(u.Data) == 0 {
			problems = append(problems, fmt.Sprintf("%s: empty file", name))
			continue
		}
		if len(u.Data) > MaxImageBytes {
			problems = append(problems, fmt.Sprintf("%s: exceeds 10MB", name))
		}
		if !allowedExts[strings.ToLower(filepath.Ext(name))] {
			problems = append(problems, fmt.Sprintf("%s: unsupported format (allowed: jpg, jpeg, png, webp)", name))
		}
		base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		if prev, dup := seen[base]; dup {
			problems = append(problems, fmt.Sprintf("%s: name collides with %s", name, prev))
		} else {
			seen[base] = name
		}
	}
	if len(problems) > 0 {
		return dErrors.Newf(dErrors.CodeValidation, "invalid images: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Transcoder converts images to WebP entirely in memory.
type Transcoder struct {
	quality float32
}

func NewTranscoder() *Transcoder {
	return &Transcoder{quality: Quality}
}

// ToWebP decodes an upload and re-encodes it as lossy WebP at the fixed
// quality. Oversized images are clamped to maxDimension on the long edge.
func (t *Transcoder) ToWebP(u Upload) ([]byte, error) {
	img, err := decode(u)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("%s: not a decodable image", filepath.Base(u.Filename)))
	}

	img = clamp(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: t.quality}); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("%s: webp encode failed", filepath.Base(u.Filename)))
	}
	return buf.Bytes(), nil
}

func decode(u Upload) (image.Image, error) {
	if strings.ToLower(filepath.Ext(u.Filename)) == ".webp" {
		return webp.Decode(bytes.NewReader(u.Data))
	}
	return imaging.Decode(bytes.NewReader(u.Data), imaging.AutoOrientation(true))
}

func clamp(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxDimension && b.Dy() <= maxDimension {
		return img
	}
	if b.Dx() >= b.Dy() {
		return imaging.Resize(img, maxDimension, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxDimension, imaging.Lanczos)
}

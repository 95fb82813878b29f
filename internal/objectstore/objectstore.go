// Package objectstore defines the blob-storage port consumed by the
// onboarding workflow, plus the key layout: pending requests write into a
// request-scoped temporary namespace, approval migrates keys into the
// per-property permanent namespace.
package objectstore

import (
	"context"
	"fmt"
	"path"
)

// Store is the blob-storage contract. Implementations must treat MoveMany as
// copy-then-delete: the returned keys live under the destination prefix.
type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	MoveMany(ctx context.Context, keys []string, destPrefix string) ([]string, error)
	DeleteMany(ctx context.Context, keys []string) error
	PublicURL(key string) string
}

// TempPrefix is the temporary namespace for a pending request's images.
func TempPrefix(requestID int64) string {
	return fmt.Sprintf("requests/%d", requestID)
}

// TempKey places a file in a request's temporary namespace.
func TempKey(requestID int64, filename string) string {
	return path.Join(TempPrefix(requestID), filename)
}

// PermanentPrefix is the durable namespace for an approved property's images.
func PermanentPrefix(propertyID int64) string {
	return fmt.Sprintf("properties/%d", propertyID)
}

// Rebase moves a key under a new prefix, keeping its final path element.
func Rebase(key, destPrefix string) string {
	return path.Join(destPrefix, path.Base(key))
}

package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"innflow/internal/platform/config"
)

// S3 is the production Store backed by any S3-compatible service.
type S3 struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewS3 connects to the configured endpoint and verifies the bucket exists.
func NewS3(ctx context.Context, cfg config.ObjectStoreConfig) (*S3, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &S3{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *S3) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// MoveMany copies each key under destPrefix then deletes the source. A failure
// mid-batch returns the keys moved so far; already-moved objects stay moved.
func (s *S3) MoveMany(ctx context.Context, keys []string, destPrefix string) ([]string, error) {
	moved := make([]string, 0, len(keys))
	for _, key := range keys {
		dest := Rebase(key, destPrefix)
		_, err := s.client.CopyObject(ctx,
			minio.CopyDestOptions{Bucket: s.bucket, Object: dest},
			minio.CopySrcOptions{Bucket: s.bucket, Object: key},
		)
		if err != nil {
			return moved, fmt.Errorf("copy %s: %w", key, err)
		}
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return moved, fmt.Errorf("remove %s after copy: %w", key, err)
		}
		moved = append(moved, dest)
	}
	return moved, nil
}

func (s *S3) DeleteMany(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}

func (s *S3) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"

	"github.com/P-MUGILVANNAN/Student-Tracking/config"
)

// b2Store uses AccessKeyID as the B2 account id and SecretAccessKey as the application key.
type b2Store struct {
	bucket  *b2.Bucket
	baseURL string
}

func newB2Store(ctx context.Context, cfg *config.StorageConfig) (*b2Store, error) {
	client, err := b2.NewClient(ctx, cfg.AccessKeyID, cfg.SecretAccessKey)
	if err != nil {
		return nil, fmt.Errorf("b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("b2 bucket %s: %w", cfg.Bucket, err)
	}

	return &b2Store{bucket: bucket, baseURL: cfg.PublicBaseURL}, nil
}

func (s *b2Store) Put(ctx context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx).WithAttrs(&b2.Attrs{ContentType: contentType})

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("b2 write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("b2 close %s: %w", key, err)
	}

	if s.baseURL != "" {
		return joinURL(s.baseURL, key), nil
	}
	return obj.URL(), nil
}

func (s *b2Store) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Object(key).Delete(ctx); err != nil && !b2.IsNotExist(err) {
		return fmt.Errorf("b2 delete %s: %w", key, err)
	}
	return nil
}

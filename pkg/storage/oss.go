package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/P-MUGILVANNAN/Student-Tracking/config"
)

type ossStore struct {
	bucket  *oss.Bucket
	baseURL string
}

func newOSSStore(cfg *config.StorageConfig) (*ossStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("oss: endpoint must be set")
	}

	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.SecretAccessKey)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %s: %w", cfg.Bucket, err)
	}

	return &ossStore{bucket: bucket, baseURL: ossBaseURL(cfg)}, nil
}

// ossBaseURL builds the virtual-hosted URL https://<bucket>.<endpoint host>.
func ossBaseURL(cfg *config.StorageConfig) string {
	if cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL
	}
	host := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s", cfg.Bucket, strings.TrimRight(host, "/"))
}

func (s *ossStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	err := s.bucket.PutObject(key, r,
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentLength(size),
	)
	if err != nil {
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return joinURL(s.baseURL, key), nil
}

func (s *ossStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("oss delete %s: %w", key, err)
	}
	return nil
}

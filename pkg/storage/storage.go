// Package storage uploads course files to object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/P-MUGILVANNAN/Student-Tracking/config"
)

// Storage stores and removes objects by key.
type Storage interface {
	// Put uploads r under key and returns the public URL of the object.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}

// New builds the driver selected by cfg.Driver.
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket must be set")
	}

	var (
		s   Storage
		err error
	)
	switch cfg.Driver {
	case "s3":
		s, err = newS3Store(ctx, cfg)
	case "b2":
		s, err = newB2Store(ctx, cfg)
	case "oss":
		s, err = newOSSStore(cfg)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("object storage ready",
		zap.String("driver", cfg.Driver),
		zap.String("bucket", cfg.Bucket),
	)
	return s, nil
}

// ObjectKey namespaces an uploaded file as <prefix>/<unix-ms>-<name>.
func ObjectKey(prefix, filename string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if r == ' ' || r < 0x20 {
			return '-'
		}
		return r
	}, name)
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return fmt.Sprintf("%s/%d-%s", prefix, now.UnixMilli(), name)
}

// Ext returns the lower-case extension of filename without the dot.
func Ext(filename string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
}

// ContentType maps the document extensions accepted by the API to MIME types.
func ContentType(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "doc":
		return "application/msword"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "ppt":
		return "application/vnd.ms-powerpoint"
	case "pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	default:
		return "application/octet-stream"
	}
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}

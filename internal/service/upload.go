package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/metrics"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/storage"
)

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileRequired    = errors.New("file is required")
	ErrUploadFailed    = errors.New("file upload failed")
)

// storedFile describes an object after a successful upload.
type storedFile struct {
	Key  string
	URL  string
	Ext  string
	Size int64
}

// uploader pushes validated files to object storage.
type uploader struct {
	store   storage.Storage
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// put checks the extension against allowed and uploads the file under prefix.
func (u *uploader) put(ctx context.Context, kind, prefix string, file *dto.FileUpload, allowed ...string) (*storedFile, error) {
	if file == nil || file.Reader == nil || file.Filename == "" {
		return nil, ErrFileRequired
	}
	ext := storage.Ext(file.Filename)
	ok := false
	for _, a := range allowed {
		if ext == a {
			ok = true
			break
		}
	}
	if !ok {
		return nil, ErrInvalidFileType
	}

	key := storage.ObjectKey(prefix, file.Filename, u.now())
	url, err := u.store.Put(ctx, key, file.Reader, file.Size, storage.ContentType(ext))
	u.metrics.ObserveUpload(kind, err)
	if err != nil {
		u.logger.Error("object upload failed", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
		return nil, ErrUploadFailed
	}
	return &storedFile{Key: key, URL: url, Ext: ext, Size: file.Size}, nil
}

// discard removes an uploaded object whose database write failed.
func (u *uploader) discard(ctx context.Context, f *storedFile) {
	removeObject(ctx, u.store, u.logger, f.Key)
}

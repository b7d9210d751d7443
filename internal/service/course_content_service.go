package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/metrics"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/storage"
)

var ErrContentNotFound = errors.New("course content not found")

// ContentExtensions accepted for course content uploads.
var ContentExtensions = []string{"pdf", "ppt", "pptx"}

// CourseContentService slide decks and notes of a course.
type CourseContentService interface {
	Upload(ctx context.Context, actor Actor, courseID, title string, file *dto.FileUpload) (*dto.CourseContentResponse, error)
	ListByCourse(ctx context.Context, actor Actor, courseID string) ([]dto.CourseContentResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type courseContentService struct {
	repo   *repository.Repository
	up     *uploader
	logger *zap.Logger
}

// NewCourseContentService creates a CourseContentService. m may be nil.
func NewCourseContentService(repo *repository.Repository, store storage.Storage, m *metrics.Metrics, logger *zap.Logger) CourseContentService {
	return &courseContentService{
		repo:   repo,
		up:     &uploader{store: store, metrics: m, logger: logger, now: time.Now},
		logger: logger,
	}
}

func (s *courseContentService) Upload(ctx context.Context, actor Actor, courseID, title string, file *dto.FileUpload) (*dto.CourseContentResponse, error) {
	if _, err := courseForActor(ctx, s.repo, actor, courseID, true); err != nil {
		if !errors.Is(err, ErrCourseNotFound) {
			s.logger.Error("query course failed", zap.Error(err))
		}
		return nil, err
	}

	stored, err := s.up.put(ctx, "course_content", "course-content", file, ContentExtensions...)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = file.Filename
	}
	content := &model.CourseContent{
		CourseID:   courseID,
		Title:      title,
		FileURL:    stored.URL,
		FileKey:    stored.Key,
		FileType:   stored.Ext,
		FileSize:   stored.Size,
		UploadedBy: actor.ID,
	}
	if err := s.repo.CourseContent.Create(ctx, content); err != nil {
		s.logger.Error("persist course content failed", zap.String("course_id", courseID), zap.Error(err))
		s.up.discard(ctx, stored)
		return nil, err
	}

	resp := toCourseContentResponse(content)
	return &resp, nil
}

func (s *courseContentService) ListByCourse(ctx context.Context, actor Actor, courseID string) ([]dto.CourseContentResponse, error) {
	if _, err := courseForActor(ctx, s.repo, actor, courseID, false); err != nil {
		if !errors.Is(err, ErrCourseNotFound) {
			s.logger.Error("query course failed", zap.Error(err))
		}
		return nil, err
	}

	list, err := s.repo.CourseContent.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("list course content failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	out := make([]dto.CourseContentResponse, 0, len(list))
	for i := range list {
		out = append(out, toCourseContentResponse(&list[i]))
	}
	return out, nil
}

func (s *courseContentService) Delete(ctx context.Context, actor Actor, id string) error {
	content, err := s.repo.CourseContent.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		s.logger.Error("query course content failed", zap.String("content_id", id), zap.Error(err))
		return err
	}
	if _, err := courseForActor(ctx, s.repo, actor, content.CourseID, true); err != nil {
		return remapNotFound(err, ErrContentNotFound)
	}

	if err := s.repo.CourseContent.Delete(ctx, id); err != nil {
		s.logger.Error("delete course content failed", zap.String("content_id", id), zap.Error(err))
		return err
	}
	s.up.discard(ctx, &storedFile{Key: content.FileKey})
	return nil
}

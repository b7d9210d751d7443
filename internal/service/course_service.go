package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/storage"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseService course CRUD scoped to the owning admin.
type CourseService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	List(ctx context.Context, actor Actor) ([]dto.CourseResponse, error)
	Get(ctx context.Context, actor Actor, id string) (*dto.CourseResponse, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type courseService struct {
	repo   *repository.Repository
	store  storage.Storage
	logger *zap.Logger
}

// NewCourseService creates a CourseService.
func NewCourseService(repo *repository.Repository, store storage.Storage, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, store: store, logger: logger}
}

func (s *courseService) Create(ctx context.Context, actor Actor, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := &model.Course{
		Title:        strings.TrimSpace(req.Title),
		Duration:     strings.TrimSpace(req.Duration),
		CourseUILink: strings.TrimSpace(req.CourseUILink),
		CreatedBy:    actor.ID,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("create course failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("course created", zap.String("course_id", course.ID), zap.String("admin_id", actor.ID))
	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) List(ctx context.Context, actor Actor) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.ListByOwner(ctx, actor.ID)
	if err != nil {
		s.logger.Error("list courses failed", zap.Error(err))
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *courseService) Get(ctx context.Context, actor Actor, id string) (*dto.CourseResponse, error) {
	course, err := s.load(ctx, actor, id, false)
	if err != nil {
		return nil, err
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.load(ctx, actor, id, true)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = strings.TrimSpace(*req.Title)
	}
	if req.Duration != nil {
		course.Duration = strings.TrimSpace(*req.Duration)
	}
	if req.CourseUILink != nil {
		course.CourseUILink = strings.TrimSpace(*req.CourseUILink)
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("update course failed", zap.String("course_id", id), zap.Error(err))
		return nil, err
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

// Delete removes the course and, through the schema's cascades, everything
// attached to it. Stored files are removed afterwards on a best-effort basis.
func (s *courseService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.load(ctx, actor, id, true); err != nil {
		return err
	}

	var keys []string
	syllabi, err := s.repo.Syllabus.ListByCourse(ctx, id)
	if err != nil {
		s.logger.Error("list course syllabi failed", zap.String("course_id", id), zap.Error(err))
		return err
	}
	for _, sy := range syllabi {
		keys = append(keys, sy.FileKey)
	}
	contents, err := s.repo.CourseContent.ListByCourse(ctx, id)
	if err != nil {
		s.logger.Error("list course contents failed", zap.String("course_id", id), zap.Error(err))
		return err
	}
	for _, c := range contents {
		keys = append(keys, c.FileKey)
	}

	if err := s.repo.Course.Delete(ctx, id); err != nil {
		s.logger.Error("delete course failed", zap.String("course_id", id), zap.Error(err))
		return err
	}

	for _, key := range keys {
		removeObject(ctx, s.store, s.logger, key)
	}
	s.logger.Info("course deleted", zap.String("course_id", id), zap.Int("files", len(keys)))
	return nil
}

func (s *courseService) load(ctx context.Context, actor Actor, id string, write bool) (*model.Course, error) {
	course, err := courseForActor(ctx, s.repo, actor, id, write)
	if err != nil && !errors.Is(err, ErrCourseNotFound) {
		s.logger.Error("query course failed", zap.String("course_id", id), zap.Error(err))
	}
	return course, err
}

// removeObject deletes a stored file; failures only get logged.
func removeObject(ctx context.Context, store storage.Storage, logger *zap.Logger, key string) {
	if store == nil || key == "" {
		return
	}
	if err := store.Delete(ctx, key); err != nil {
		logger.Warn("delete stored object failed", zap.String("key", key), zap.Error(err))
	}
}

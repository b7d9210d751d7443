package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/metrics"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/storage"
)

var ErrSyllabusNotFound = errors.New("syllabus not found")

// SyllabusExtensions accepted for syllabus uploads.
var SyllabusExtensions = []string{"pdf", "doc", "docx"}

// SyllabusService syllabus documents of a course.
type SyllabusService interface {
	Upload(ctx context.Context, actor Actor, courseID string, file *dto.FileUpload) (*dto.SyllabusResponse, error)
	List(ctx context.Context, actor Actor) ([]dto.SyllabusResponse, error)
	// GetByCourse returns the most recently uploaded syllabus of the course.
	GetByCourse(ctx context.Context, actor Actor, courseID string) (*dto.SyllabusResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type syllabusService struct {
	repo   *repository.Repository
	up     *uploader
	logger *zap.Logger
}

// NewSyllabusService creates a SyllabusService. m may be nil.
func NewSyllabusService(repo *repository.Repository, store storage.Storage, m *metrics.Metrics, logger *zap.Logger) SyllabusService {
	return &syllabusService{
		repo:   repo,
		up:     &uploader{store: store, metrics: m, logger: logger, now: time.Now},
		logger: logger,
	}
}

func (s *syllabusService) Upload(ctx context.Context, actor Actor, courseID string, file *dto.FileUpload) (*dto.SyllabusResponse, error) {
	if _, err := courseForActor(ctx, s.repo, actor, courseID, true); err != nil {
		s.logUnexpected("query course failed", err)
		return nil, err
	}

	stored, err := s.up.put(ctx, "syllabus", "syllabus", file, SyllabusExtensions...)
	if err != nil {
		return nil, err
	}

	syllabus := &model.Syllabus{
		CourseID:   courseID,
		Filename:   file.Filename,
		FileURL:    stored.URL,
		FileKey:    stored.Key,
		FileType:   stored.Ext,
		FileSize:   stored.Size,
		UploadedBy: actor.ID,
	}
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Syllabus.Create(ctx, syllabus); err != nil {
			return err
		}
		return tx.Course.SetSyllabus(ctx, courseID, syllabus.ID)
	})
	if err != nil {
		s.logger.Error("persist syllabus failed", zap.String("course_id", courseID), zap.Error(err))
		s.up.discard(ctx, stored)
		return nil, err
	}

	s.logger.Info("syllabus uploaded", zap.String("syllabus_id", syllabus.ID), zap.String("course_id", courseID))
	resp := toSyllabusResponse(syllabus)
	return &resp, nil
}

func (s *syllabusService) List(ctx context.Context, actor Actor) ([]dto.SyllabusResponse, error) {
	list, err := s.repo.Syllabus.ListByOwner(ctx, actor.ID)
	if err != nil {
		s.logger.Error("list syllabi failed", zap.Error(err))
		return nil, err
	}
	out := make([]dto.SyllabusResponse, 0, len(list))
	for i := range list {
		out = append(out, toSyllabusResponse(&list[i]))
	}
	return out, nil
}

func (s *syllabusService) GetByCourse(ctx context.Context, actor Actor, courseID string) (*dto.SyllabusResponse, error) {
	if _, err := courseForActor(ctx, s.repo, actor, courseID, false); err != nil {
		s.logUnexpected("query course failed", err)
		return nil, err
	}

	syllabus, err := s.repo.Syllabus.GetLatestByCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSyllabusNotFound
		}
		s.logger.Error("query syllabus failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	resp := toSyllabusResponse(syllabus)
	return &resp, nil
}

func (s *syllabusService) Delete(ctx context.Context, actor Actor, id string) error {
	syllabus, err := s.repo.Syllabus.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSyllabusNotFound
		}
		s.logger.Error("query syllabus failed", zap.String("syllabus_id", id), zap.Error(err))
		return err
	}
	if _, err := courseForActor(ctx, s.repo, actor, syllabus.CourseID, true); err != nil {
		s.logUnexpected("query course failed", err)
		return remapNotFound(err, ErrSyllabusNotFound)
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Course.ClearSyllabus(ctx, syllabus.CourseID, syllabus.ID); err != nil {
			return err
		}
		return tx.Syllabus.Delete(ctx, syllabus.ID)
	})
	if err != nil {
		s.logger.Error("delete syllabus failed", zap.String("syllabus_id", id), zap.Error(err))
		return err
	}

	s.up.discard(ctx, &storedFile{Key: syllabus.FileKey})
	return nil
}

func (s *syllabusService) logUnexpected(msg string, err error) {
	if !errors.Is(err, ErrCourseNotFound) {
		s.logger.Error(msg, zap.Error(err))
	}
}

package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	pkgerrors "github.com/P-MUGILVANNAN/Student-Tracking/pkg/errors"
)

var (
	ErrProjectSubmissionNotFound = errors.New("project submission not found")
	ErrProjectAlreadySubmitted   = errors.New("you have already submitted this project")
)

// ProjectSubmissionService student work handed in for a project.
type ProjectSubmissionService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateProjectSubmissionRequest) (*dto.ProjectSubmissionResponse, error)
	ListByProject(ctx context.Context, actor Actor, projectID string) ([]dto.ProjectSubmissionResponse, error)
	GetMine(ctx context.Context, actor Actor, projectID string) (*dto.ProjectSubmissionResponse, error)
	ListByStudent(ctx context.Context, actor Actor, studentID string) ([]dto.ProjectSubmissionResponse, error)
	ListByCourse(ctx context.Context, actor Actor, courseID string) ([]dto.ProjectSubmissionResponse, error)
	Get(ctx context.Context, actor Actor, id string) (*dto.ProjectSubmissionResponse, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateProjectSubmissionRequest) (*dto.ProjectSubmissionResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type projectSubmissionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectSubmissionService creates a ProjectSubmissionService.
func NewProjectSubmissionService(repo *repository.Repository, logger *zap.Logger) ProjectSubmissionService {
	return &projectSubmissionService{repo: repo, logger: logger}
}

func (s *projectSubmissionService) Create(ctx context.Context, actor Actor, req *dto.CreateProjectSubmissionRequest) (*dto.ProjectSubmissionResponse, error) {
	if !actor.IsStudent() {
		return nil, ErrNoPermission
	}
	project, err := getProject(ctx, s.repo, req.ProjectID)
	if err != nil {
		if !errors.Is(err, ErrProjectNotFound) {
			s.logger.Error("query project failed", zap.Error(err))
		}
		return nil, err
	}

	if _, err := s.repo.ProjectSubmission.GetByProjectAndStudent(ctx, project.ID, actor.ID); err == nil {
		return nil, ErrProjectAlreadySubmitted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("query project submission failed", zap.Error(err))
		return nil, err
	}

	sub := &model.ProjectSubmission{
		ProjectID:   project.ID,
		StudentID:   actor.ID,
		Title:       project.Title,
		GithubLink:  strings.TrimSpace(req.GithubLink),
		LiveLink:    strings.TrimSpace(req.LiveLink),
		Description: req.Description,
		Status:      model.SubmissionSubmitted,
	}
	if err := s.repo.ProjectSubmission.Create(ctx, sub); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrProjectAlreadySubmitted
		}
		s.logger.Error("create project submission failed", zap.String("project_id", project.ID), zap.Error(err))
		return nil, err
	}

	sub.Project = project
	resp := toProjectSubmissionResponse(sub)
	return &resp, nil
}

func (s *projectSubmissionService) ListByProject(ctx context.Context, actor Actor, projectID string) ([]dto.ProjectSubmissionResponse, error) {
	project, err := getProject(ctx, s.repo, projectID)
	if err != nil {
		if !errors.Is(err, ErrProjectNotFound) {
			s.logger.Error("query project failed", zap.Error(err))
		}
		return nil, err
	}
	// owner-only read
	if !CanAccess(actor, project.CreatedBy, true) {
		return nil, ErrProjectNotFound
	}

	list, err := s.repo.ProjectSubmission.ListByProject(ctx, projectID)
	if err != nil {
		s.logger.Error("list project submissions failed", zap.String("project_id", projectID), zap.Error(err))
		return nil, err
	}
	return toProjectSubmissionResponses(list), nil
}

func (s *projectSubmissionService) GetMine(ctx context.Context, actor Actor, projectID string) (*dto.ProjectSubmissionResponse, error) {
	sub, err := s.repo.ProjectSubmission.GetByProjectAndStudent(ctx, projectID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectSubmissionNotFound
		}
		s.logger.Error("query project submission failed", zap.Error(err))
		return nil, err
	}
	resp := toProjectSubmissionResponse(sub)
	return &resp, nil
}

func (s *projectSubmissionService) ListByStudent(ctx context.Context, actor Actor, studentID string) ([]dto.ProjectSubmissionResponse, error) {
	ownerID, err := studentScope(actor, studentID)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.ProjectSubmission.ListByStudent(ctx, studentID, ownerID)
	if err != nil {
		s.logger.Error("list student project submissions failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}
	return toProjectSubmissionResponses(list), nil
}

func (s *projectSubmissionService) ListByCourse(ctx context.Context, actor Actor, courseID string) ([]dto.ProjectSubmissionResponse, error) {
	if _, err := courseForActor(ctx, s.repo, actor, courseID, true); err != nil {
		if !errors.Is(err, ErrCourseNotFound) {
			s.logger.Error("query course failed", zap.Error(err))
		}
		return nil, err
	}
	list, err := s.repo.ProjectSubmission.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("list course project submissions failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	return toProjectSubmissionResponses(list), nil
}

func (s *projectSubmissionService) Get(ctx context.Context, actor Actor, id string) (*dto.ProjectSubmissionResponse, error) {
	sub, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	resp := toProjectSubmissionResponse(sub)
	return &resp, nil
}

func (s *projectSubmissionService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateProjectSubmissionRequest) (*dto.ProjectSubmissionResponse, error) {
	sub, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if sub.StudentID != actor.ID {
		return nil, ErrNoPermission
	}

	if req.GithubLink != nil {
		sub.GithubLink = strings.TrimSpace(*req.GithubLink)
	}
	if req.LiveLink != nil {
		sub.LiveLink = strings.TrimSpace(*req.LiveLink)
	}
	if req.Description != nil {
		sub.Description = *req.Description
	}

	if err := s.repo.ProjectSubmission.Update(ctx, sub); err != nil {
		s.logger.Error("update project submission failed", zap.String("submission_id", id), zap.Error(err))
		return nil, err
	}
	resp := toProjectSubmissionResponse(sub)
	return &resp, nil
}

func (s *projectSubmissionService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.ProjectSubmission.Delete(ctx, id); err != nil {
		s.logger.Error("delete project submission failed", zap.String("submission_id", id), zap.Error(err))
		return err
	}
	return nil
}

// load returns a submission visible to the actor: its author, or the admin
// owning the project. Other students get ErrNoPermission.
func (s *projectSubmissionService) load(ctx context.Context, actor Actor, id string) (*model.ProjectSubmission, error) {
	sub, err := s.repo.ProjectSubmission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectSubmissionNotFound
		}
		s.logger.Error("query project submission failed", zap.String("submission_id", id), zap.Error(err))
		return nil, err
	}

	switch {
	case actor.IsStudent():
		if sub.StudentID != actor.ID {
			return nil, ErrNoPermission
		}
	case actor.IsAdmin():
		if sub.Project == nil || !CanAccess(actor, sub.Project.CreatedBy, true) {
			return nil, ErrProjectSubmissionNotFound
		}
	default:
		return nil, ErrNoPermission
	}
	return sub, nil
}

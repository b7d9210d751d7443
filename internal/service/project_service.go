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
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidCategory = errors.New("invalid project category")
)

// ProjectService projects assigned to a course.
type ProjectService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(ctx context.Context, actor Actor) ([]dto.ProjectResponse, error)
	// ListByCourse filters by category when category is non-empty.
	ListByCourse(ctx context.Context, actor Actor, courseID, category string) ([]dto.ProjectResponse, error)
	Get(ctx context.Context, actor Actor, id string) (*dto.ProjectResponse, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type projectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectService creates a ProjectService.
func NewProjectService(repo *repository.Repository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) Create(ctx context.Context, actor Actor, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := checkCategory(req.Category); err != nil {
		return nil, err
	}
	if _, err := courseForActor(ctx, s.repo, actor, req.CourseID, true); err != nil {
		if !errors.Is(err, ErrCourseNotFound) {
			s.logger.Error("query course failed", zap.Error(err))
		}
		return nil, err
	}

	maxGroup := req.MaxGroupSize
	if maxGroup == 0 {
		maxGroup = 1
	}
	project := &model.Project{
		CourseID:     req.CourseID,
		CreatedBy:    actor.ID,
		Title:        strings.TrimSpace(req.Title),
		Category:     req.Category,
		Description:  req.Description,
		Duration:     req.Duration,
		MaxGroupSize: maxGroup,
		Resources:    req.Resources,
		Requirements: req.Requirements,
	}
	if err := s.repo.Project.Create(ctx, project); err != nil {
		s.logger.Error("create project failed", zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, err
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) List(ctx context.Context, actor Actor) ([]dto.ProjectResponse, error) {
	list, err := s.repo.Project.ListByOwner(ctx, actor.ID)
	if err != nil {
		s.logger.Error("list projects failed", zap.Error(err))
		return nil, err
	}
	return toProjectResponses(list), nil
}

func (s *projectService) ListByCourse(ctx context.Context, actor Actor, courseID, category string) ([]dto.ProjectResponse, error) {
	if category != "" {
		if err := checkCategory(category); err != nil {
			return nil, err
		}
	}
	if _, err := courseForActor(ctx, s.repo, actor, courseID, false); err != nil {
		if !errors.Is(err, ErrCourseNotFound) {
			s.logger.Error("query course failed", zap.Error(err))
		}
		return nil, err
	}

	list, err := s.repo.Project.ListByCourse(ctx, courseID, category)
	if err != nil {
		s.logger.Error("list course projects failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	return toProjectResponses(list), nil
}

func (s *projectService) Get(ctx context.Context, actor Actor, id string) (*dto.ProjectResponse, error) {
	project, err := s.load(ctx, actor, id, false)
	if err != nil {
		return nil, err
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.load(ctx, actor, id, true)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = strings.TrimSpace(*req.Title)
	}
	if req.Category != nil {
		if err := checkCategory(*req.Category); err != nil {
			return nil, err
		}
		project.Category = *req.Category
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Duration != nil {
		project.Duration = *req.Duration
	}
	if req.MaxGroupSize != nil {
		project.MaxGroupSize = *req.MaxGroupSize
	}
	if req.Resources != nil {
		project.Resources = *req.Resources
	}
	if req.Requirements != nil {
		project.Requirements = *req.Requirements
	}

	if err := s.repo.Project.Update(ctx, project); err != nil {
		s.logger.Error("update project failed", zap.String("project_id", id), zap.Error(err))
		return nil, err
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.load(ctx, actor, id, true); err != nil {
		return err
	}
	if err := s.repo.Project.Delete(ctx, id); err != nil {
		s.logger.Error("delete project failed", zap.String("project_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *projectService) load(ctx context.Context, actor Actor, id string, write bool) (*model.Project, error) {
	project, err := getProject(ctx, s.repo, id)
	if err != nil {
		if !errors.Is(err, ErrProjectNotFound) {
			s.logger.Error("query project failed", zap.String("project_id", id), zap.Error(err))
		}
		return nil, err
	}
	if !CanAccess(actor, project.CreatedBy, write) {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func getProject(ctx context.Context, repo *repository.Repository, id string) (*model.Project, error) {
	project, err := repo.Project.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func checkCategory(category string) error {
	for _, c := range model.ProjectCategories {
		if c == category {
			return nil
		}
	}
	return ErrInvalidCategory
}

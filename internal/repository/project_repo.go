package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// ProjectRepository project data access.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id string) (*model.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Project, error)
	// ListByCourse filters by category when it is non-empty.
	ListByCourse(ctx context.Context, courseID, category string) ([]model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo creates a ProjectRepository.
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Project, error) {
	var list []model.Project
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *projectRepo) ListByCourse(ctx context.Context, courseID, category string) ([]model.Project, error) {
	var list []model.Project
	q := r.db.WithContext(ctx).Where("course_id = ?", courseID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *projectRepo) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{}).Error
}

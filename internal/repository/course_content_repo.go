package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// CourseContentRepository course content data access.
type CourseContentRepository interface {
	Create(ctx context.Context, content *model.CourseContent) error
	GetByID(ctx context.Context, id string) (*model.CourseContent, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.CourseContent, error)
	Delete(ctx context.Context, id string) error
}

type courseContentRepo struct {
	db *gorm.DB
}

// NewCourseContentRepo creates a CourseContentRepository.
func NewCourseContentRepo(db *gorm.DB) CourseContentRepository {
	return &courseContentRepo{db: db}
}

func (r *courseContentRepo) Create(ctx context.Context, content *model.CourseContent) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *courseContentRepo) GetByID(ctx context.Context, id string) (*model.CourseContent, error) {
	var c model.CourseContent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseContentRepo) ListByCourse(ctx context.Context, courseID string) ([]model.CourseContent, error) {
	var list []model.CourseContent
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *courseContentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CourseContent{}).Error
}

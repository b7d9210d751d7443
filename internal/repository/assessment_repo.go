package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// AssessmentRepository assessment data access. Questions are always loaded in order.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Assessment, error)
}

type assessmentRepo struct {
	db *gorm.DB
}

// NewAssessmentRepo creates an AssessmentRepository.
func NewAssessmentRepo(db *gorm.DB) AssessmentRepository {
	return &assessmentRepo{db: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create inserts the assessment and its questions in one statement batch.
func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Assessment, error) {
	var list []model.Assessment
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// SyllabusRepository syllabus data access.
type SyllabusRepository interface {
	Create(ctx context.Context, syllabus *model.Syllabus) error
	GetByID(ctx context.Context, id string) (*model.Syllabus, error)
	GetLatestByCourse(ctx context.Context, courseID string) (*model.Syllabus, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Syllabus, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Syllabus, error)
	Delete(ctx context.Context, id string) error
}

type syllabusRepo struct {
	db *gorm.DB
}

// NewSyllabusRepo creates a SyllabusRepository.
func NewSyllabusRepo(db *gorm.DB) SyllabusRepository {
	return &syllabusRepo{db: db}
}

func (r *syllabusRepo) Create(ctx context.Context, syllabus *model.Syllabus) error {
	return r.db.WithContext(ctx).Create(syllabus).Error
}

func (r *syllabusRepo) GetByID(ctx context.Context, id string) (*model.Syllabus, error) {
	var s model.Syllabus
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *syllabusRepo) GetLatestByCourse(ctx context.Context, courseID string) (*model.Syllabus, error) {
	var s model.Syllabus
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *syllabusRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Syllabus, error) {
	var list []model.Syllabus
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Find(&list).Error
	return list, err
}

func (r *syllabusRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Syllabus, error) {
	var list []model.Syllabus
	err := r.db.WithContext(ctx).
		Joins("JOIN courses c ON c.id = syllabi.course_id").
		Where("c.created_by = ?", ownerID).
		Order("syllabi.created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *syllabusRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Syllabus{}).Error
}

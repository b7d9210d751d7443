package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// CourseRepository course data access.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id string) error
	SetSyllabus(ctx context.Context, courseID, syllabusID string) error
	// ClearSyllabus drops the back-reference only while it still points at syllabusID.
	ClearSyllabus(ctx context.Context, courseID, syllabusID string) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo creates a CourseRepository.
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Course{}).Error
}

func (r *courseRepo) SetSyllabus(ctx context.Context, courseID, syllabusID string) error {
	return r.db.WithContext(ctx).Model(&model.Course{}).
		Where("id = ?", courseID).
		Updates(map[string]interface{}{"syllabus_id": syllabusID, "updated_at": gorm.Expr("NOW()")}).Error
}

func (r *courseRepo) ClearSyllabus(ctx context.Context, courseID, syllabusID string) error {
	return r.db.WithContext(ctx).Model(&model.Course{}).
		Where("id = ? AND syllabus_id = ?", courseID, syllabusID).
		Updates(map[string]interface{}{"syllabus_id": nil, "updated_at": gorm.Expr("NOW()")}).Error
}

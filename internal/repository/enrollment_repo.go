package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// EnrollmentRepository enrollment data access.
type EnrollmentRepository interface {
	Create(ctx context.Context, e *model.Enrollment) error
	GetByID(ctx context.Context, id string) (*model.Enrollment, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error)
	// UpsertDay writes the note of one date, overwriting an existing one.
	UpsertDay(ctx context.Context, day *model.EnrollmentDay) error
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo creates an EnrollmentRepository.
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func orderedDays(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC")
}

func (r *enrollmentRepo) Create(ctx context.Context, e *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id string) (*model.Enrollment, error) {
	var e model.Enrollment
	if err := r.db.WithContext(ctx).Preload("Days", orderedDays).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Days", orderedDays).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Days", orderedDays).
		Where("user_id = ?", userID).
		Order("enrolled_at ASC").
		Find(&list).Error
	return list, err
}

func (r *enrollmentRepo) UpsertDay(ctx context.Context, day *model.EnrollmentDay) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "enrollment_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "updated_at"}),
		}).
		Create(day).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// ProgressRepository progress data access. Days are loaded in day order.
type ProgressRepository interface {
	Create(ctx context.Context, p *model.Progress) error
	GetByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Progress, error)
	// MarkDayComplete returns false when the progress has no such day.
	MarkDayComplete(ctx context.Context, progressID string, dayIndex int) (bool, error)
}

type progressRepo struct {
	db *gorm.DB
}

// NewProgressRepo creates a ProgressRepository.
func NewProgressRepo(db *gorm.DB) ProgressRepository {
	return &progressRepo{db: db}
}

func (r *progressRepo) Create(ctx context.Context, p *model.Progress) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *progressRepo) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*model.Progress, error) {
	var p model.Progress
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_index ASC") }).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *progressRepo) MarkDayComplete(ctx context.Context, progressID string, dayIndex int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ProgressDay{}).
		Where("progress_id = ? AND day_index = ?", progressID, dayIndex).
		Update("completed", true)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Progress{}).
		Where("id = ?", progressID).
		Update("updated_at", gorm.Expr("NOW()")).Error
	return true, err
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// AttendanceFilter narrows a student's attendance history.
type AttendanceFilter struct {
	StudentID string
	CourseID  string
	OwnerID   string // non-empty: only courses owned by this admin
	From      *time.Time
	To        *time.Time
}

// StatusCount aggregated attendance per status.
type StatusCount struct {
	Status string
	Count  int64
}

// AttendanceRepository attendance data access.
type AttendanceRepository interface {
	// Upsert inserts or overwrites the record keyed by (student, date, course) in one statement.
	Upsert(ctx context.Context, a *model.Attendance) error
	GetByID(ctx context.Context, id string) (*model.Attendance, error)
	ListByDateAndCourse(ctx context.Context, date time.Time, courseID string) ([]model.Attendance, error)
	ListByStudent(ctx context.Context, f AttendanceFilter) ([]model.Attendance, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Attendance, error)
	CountByStatus(ctx context.Context, courseID string) ([]StatusCount, error)
	Update(ctx context.Context, a *model.Attendance) error
	Delete(ctx context.Context, id string) error
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates an AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Upsert(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).
		Omit("Student").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "date"}, {Name: "course_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "grooming_status", "remarks", "marked_by", "updated_at",
			}),
		}).
		Create(a).Error
}

func (r *attendanceRepo) GetByID(ctx context.Context, id string) (*model.Attendance, error) {
	var a model.Attendance
	if err := r.db.WithContext(ctx).Preload("Student").Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *attendanceRepo) ListByDateAndCourse(ctx context.Context, date time.Time, courseID string) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("date = ? AND course_id = ?", date.Format(model.DateLayout), courseID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *attendanceRepo) ListByStudent(ctx context.Context, f AttendanceFilter) ([]model.Attendance, error) {
	var list []model.Attendance
	q := r.db.WithContext(ctx).Preload("Student").Where("attendances.student_id = ?", f.StudentID)
	if f.CourseID != "" {
		q = q.Where("attendances.course_id = ?", f.CourseID)
	}
	if f.OwnerID != "" {
		q = q.Joins("JOIN courses c ON c.id = attendances.course_id").Where("c.created_by = ?", f.OwnerID)
	}
	if f.From != nil {
		q = q.Where("attendances.date >= ?", f.From.Format(model.DateLayout))
	}
	if f.To != nil {
		q = q.Where("attendances.date <= ?", f.To.Format(model.DateLayout))
	}
	err := q.Order("attendances.date DESC").Find(&list).Error
	return list, err
}

func (r *attendanceRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("course_id = ?", courseID).
		Order("date ASC").
		Find(&list).Error
	return list, err
}

func (r *attendanceRepo) CountByStatus(ctx context.Context, courseID string) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Select("status, COUNT(*) AS count").
		Where("course_id = ?", courseID).
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (r *attendanceRepo) Update(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Omit("Student").Save(a).Error
}

func (r *attendanceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Attendance{}).Error
}

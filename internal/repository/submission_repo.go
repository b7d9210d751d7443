package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// SubmissionRepository assessment submission data access.
// List methods preload answers, the student and the assessment.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.StudentSubmission) error
	ListByAssessment(ctx context.Context, assessmentID string) ([]model.StudentSubmission, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.StudentSubmission, error)
	// ListByStudent returns the student's submissions; a non-empty ownerID keeps
	// only assessments of courses that admin owns.
	ListByStudent(ctx context.Context, studentID, ownerID string) ([]model.StudentSubmission, error)
}

type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo creates a SubmissionRepository.
func NewSubmissionRepo(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Answers").
		Preload("Student").
		Preload("Assessment")
}

// Create inserts the submission with its graded answers. A second submission
// for the same (student, assessment) fails with a unique violation.
func (r *submissionRepo) Create(ctx context.Context, submission *model.StudentSubmission) error {
	return r.db.WithContext(ctx).Omit("Student", "Assessment").Create(submission).Error
}

func (r *submissionRepo) ListByAssessment(ctx context.Context, assessmentID string) ([]model.StudentSubmission, error) {
	var list []model.StudentSubmission
	err := r.withDetails(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("submitted_at DESC").
		Find(&list).Error
	return list, err
}

func (r *submissionRepo) ListByCourse(ctx context.Context, courseID string) ([]model.StudentSubmission, error) {
	var list []model.StudentSubmission
	err := r.withDetails(ctx).
		Joins("JOIN assessments a ON a.id = student_submissions.assessment_id").
		Where("a.course_id = ?", courseID).
		Order("student_submissions.submitted_at DESC").
		Find(&list).Error
	return list, err
}

func (r *submissionRepo) ListByStudent(ctx context.Context, studentID, ownerID string) ([]model.StudentSubmission, error) {
	var list []model.StudentSubmission
	q := r.withDetails(ctx).Where("student_submissions.student_id = ?", studentID)
	if ownerID != "" {
		q = q.Joins("JOIN assessments a ON a.id = student_submissions.assessment_id").
			Joins("JOIN courses c ON c.id = a.course_id").
			Where("c.created_by = ?", ownerID)
	}
	err := q.Order("student_submissions.submitted_at DESC").Find(&list).Error
	return list, err
}

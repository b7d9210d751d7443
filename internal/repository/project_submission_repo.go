package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// ProjectSubmissionRepository project submission data access.
type ProjectSubmissionRepository interface {
	Create(ctx context.Context, sub *model.ProjectSubmission) error
	GetByID(ctx context.Context, id string) (*model.ProjectSubmission, error)
	GetByProjectAndStudent(ctx context.Context, projectID, studentID string) (*model.ProjectSubmission, error)
	ListByProject(ctx context.Context, projectID string) ([]model.ProjectSubmission, error)
	// ListByStudent keeps only projects owned by ownerID when it is non-empty.
	ListByStudent(ctx context.Context, studentID, ownerID string) ([]model.ProjectSubmission, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.ProjectSubmission, error)
	Update(ctx context.Context, sub *model.ProjectSubmission) error
	Delete(ctx context.Context, id string) error
}

type projectSubmissionRepo struct {
	db *gorm.DB
}

// NewProjectSubmissionRepo creates a ProjectSubmissionRepository.
func NewProjectSubmissionRepo(db *gorm.DB) ProjectSubmissionRepository {
	return &projectSubmissionRepo{db: db}
}

func (r *projectSubmissionRepo) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Project").Preload("Student")
}

func (r *projectSubmissionRepo) Create(ctx context.Context, sub *model.ProjectSubmission) error {
	return r.db.WithContext(ctx).Omit("Project", "Student").Create(sub).Error
}

func (r *projectSubmissionRepo) GetByID(ctx context.Context, id string) (*model.ProjectSubmission, error) {
	var s model.ProjectSubmission
	if err := r.withDetails(ctx).Where("project_submissions.id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *projectSubmissionRepo) GetByProjectAndStudent(ctx context.Context, projectID, studentID string) (*model.ProjectSubmission, error) {
	var s model.ProjectSubmission
	err := r.withDetails(ctx).
		Where("project_id = ? AND student_id = ?", projectID, studentID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *projectSubmissionRepo) ListByProject(ctx context.Context, projectID string) ([]model.ProjectSubmission, error) {
	var list []model.ProjectSubmission
	err := r.withDetails(ctx).
		Where("project_id = ?", projectID).
		Order("submitted_at DESC").
		Find(&list).Error
	return list, err
}

func (r *projectSubmissionRepo) ListByStudent(ctx context.Context, studentID, ownerID string) ([]model.ProjectSubmission, error) {
	var list []model.ProjectSubmission
	q := r.withDetails(ctx).Where("project_submissions.student_id = ?", studentID)
	if ownerID != "" {
		q = q.Joins("JOIN projects p ON p.id = project_submissions.project_id").
			Where("p.created_by = ?", ownerID)
	}
	err := q.Order("project_submissions.submitted_at DESC").Find(&list).Error
	return list, err
}

func (r *projectSubmissionRepo) ListByCourse(ctx context.Context, courseID string) ([]model.ProjectSubmission, error) {
	var list []model.ProjectSubmission
	err := r.withDetails(ctx).
		Joins("JOIN projects p ON p.id = project_submissions.project_id").
		Where("p.course_id = ?", courseID).
		Order("project_submissions.submitted_at DESC").
		Find(&list).Error
	return list, err
}

func (r *projectSubmissionRepo) Update(ctx context.Context, sub *model.ProjectSubmission) error {
	return r.db.WithContext(ctx).Omit("Project", "Student").Save(sub).Error
}

func (r *projectSubmissionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectSubmission{}).Error
}

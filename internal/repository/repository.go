package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository groups every repository.
type Repository struct {
	db *gorm.DB

	User              UserRepository
	Course            CourseRepository
	Syllabus          SyllabusRepository
	CourseContent     CourseContentRepository
	Assessment        AssessmentRepository
	Submission        SubmissionRepository
	Project           ProjectRepository
	ProjectSubmission ProjectSubmissionRepository
	Attendance        AttendanceRepository
	Progress          ProgressRepository
	Enrollment        EnrollmentRepository
}

// NewRepository creates the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:                db,
		User:              NewUserRepo(db),
		Course:            NewCourseRepo(db),
		Syllabus:          NewSyllabusRepo(db),
		CourseContent:     NewCourseContentRepo(db),
		Assessment:        NewAssessmentRepo(db),
		Submission:        NewSubmissionRepo(db),
		Project:           NewProjectRepo(db),
		ProjectSubmission: NewProjectSubmissionRepo(db),
		Attendance:        NewAttendanceRepo(db),
		Progress:          NewProgressRepo(db),
		Enrollment:        NewEnrollmentRepo(db),
	}
}

// Transaction runs fn with repositories bound to one database transaction.
// A Repository built without a database (tests) runs fn directly.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

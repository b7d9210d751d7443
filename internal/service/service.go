package service

import (
	"go.uber.org/zap"

	"github.com/P-MUGILVANNAN/Student-Tracking/config"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/jwt"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/metrics"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/storage"
)

// Service groups every service.
type Service struct {
	Auth              AuthService
	User              UserService
	Course            CourseService
	Syllabus          SyllabusService
	CourseContent     CourseContentService
	Assessment        AssessmentService
	Project           ProjectService
	ProjectSubmission ProjectSubmissionService
	Attendance        AttendanceService
	Enrollment        EnrollmentService
}

// NewService creates the service aggregate. m may be nil.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	store storage.Storage,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:              NewAuthService(cfg, repo, jwtMgr, logger),
		User:              NewUserService(cfg, repo, logger),
		Course:            NewCourseService(repo, store, logger),
		Syllabus:          NewSyllabusService(repo, store, m, logger),
		CourseContent:     NewCourseContentService(repo, store, m, logger),
		Assessment:        NewAssessmentService(repo, m, logger),
		Project:           NewProjectService(repo, logger),
		ProjectSubmission: NewProjectSubmissionService(repo, logger),
		Attendance:        NewAttendanceService(repo, logger),
		Enrollment:        NewEnrollmentService(repo, logger),
	}
}

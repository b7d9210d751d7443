package handler

import "github.com/P-MUGILVANNAN/Student-Tracking/internal/service"

// Handler aggregates every module handler.
type Handler struct {
	Auth              *AuthHandler
	User              *UserHandler
	Course            *CourseHandler
	Syllabus          *SyllabusHandler
	CourseContent     *CourseContentHandler
	Assessment        *AssessmentHandler
	Project           *ProjectHandler
	ProjectSubmission *ProjectSubmissionHandler
	Attendance        *AttendanceHandler
	Enrollment        *EnrollmentHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:              NewAuthHandler(svc.Auth),
		User:              NewUserHandler(svc.User),
		Course:            NewCourseHandler(svc.Course),
		Syllabus:          NewSyllabusHandler(svc.Syllabus),
		CourseContent:     NewCourseContentHandler(svc.CourseContent),
		Assessment:        NewAssessmentHandler(svc.Assessment),
		Project:           NewProjectHandler(svc.Project),
		ProjectSubmission: NewProjectSubmissionHandler(svc.ProjectSubmission),
		Attendance:        NewAttendanceHandler(svc.Attendance),
		Enrollment:        NewEnrollmentHandler(svc.Enrollment),
	}
}

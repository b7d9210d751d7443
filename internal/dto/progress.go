package dto

import "time"

// DayPlanRequest one planned day of an enrollment.
type DayPlanRequest struct {
	DayIndex int    `json:"dayIndex" binding:"required,min=1,max=1000"`
	Content  string `json:"content"`
	Task     string `json:"task"`
}

// AdminEnrollRequest POST /api/admin/enroll
type AdminEnrollRequest struct {
	StudentID string           `json:"studentId" binding:"required,uuid"`
	CourseID  string           `json:"courseId" binding:"required,uuid"`
	DaysData  []DayPlanRequest `json:"daysData" binding:"max=1000,dive"`
}

// SelfEnrollRequest POST /api/auth/enroll
type SelfEnrollRequest struct {
	CourseID string `json:"courseId" binding:"required,uuid"`
}

// DayNoteRequest PUT /api/auth/progress
type DayNoteRequest struct {
	EnrollmentID string `json:"enrollmentId" binding:"required,uuid"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	Status       string `json:"status" binding:"max=50"`
	Notes        string `json:"notes" binding:"max=2000"`
}

// UpdateCompletionRequest PUT /api/progress/update-completion
type UpdateCompletionRequest struct {
	UserID   string `json:"userId" binding:"required,uuid"`
	CourseID string `json:"courseId" binding:"required,uuid"`
	DayIndex int    `json:"dayIndex" binding:"required,min=1"`
}

// ProgressDayResponse one day of a progress plan.
type ProgressDayResponse struct {
	DayIndex  int    `json:"dayIndex"`
	Content   string `json:"content"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// ProgressResponse progress payload.
type ProgressResponse struct {
	ID            string                `json:"id"`
	UserID        string                `json:"userId"`
	CourseID      string                `json:"courseId"`
	Days          []ProgressDayResponse `json:"days"`
	CompletedDays int                   `json:"completedDays"`
	TotalDays     int                   `json:"totalDays"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// EnrollmentDayResponse a dated note of an enrollment.
type EnrollmentDayResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// EnrollmentResponse enrollment payload.
type EnrollmentResponse struct {
	ID         string                  `json:"id"`
	CourseID   string                  `json:"courseId"`
	EnrolledAt time.Time               `json:"enrolledAt"`
	Days       []EnrollmentDayResponse `json:"days"`
}

// AdminEnrollResponse POST /api/admin/enroll
type AdminEnrollResponse struct {
	Progress   ProgressResponse   `json:"progress"`
	Enrollment EnrollmentResponse `json:"enrollment"`
}

package dto

import "time"

// CreateProjectRequest POST /api/projects
type CreateProjectRequest struct {
	CourseID     string `json:"courseId" binding:"required,uuid"`
	Title        string `json:"title" binding:"required,max=200"`
	Category     string `json:"category" binding:"required,oneof=html-css javascript bootstrap react-angular final-project"`
	Description  string `json:"description" binding:"required"`
	Duration     string `json:"duration" binding:"required,oneof=1-week 2-weeks 3-weeks 4-weeks 5-weeks 6-weeks semester-long"`
	MaxGroupSize int    `json:"maxGroupSize" binding:"omitempty,min=1,max=20"`
	Resources    string `json:"resources"`
	Requirements string `json:"requirements"`
}

// UpdateProjectRequest PUT /api/projects/:id
type UpdateProjectRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=1,max=200"`
	Category     *string `json:"category" binding:"omitempty,oneof=html-css javascript bootstrap react-angular final-project"`
	Description  *string `json:"description" binding:"omitempty,min=1"`
	Duration     *string `json:"duration" binding:"omitempty,oneof=1-week 2-weeks 3-weeks 4-weeks 5-weeks 6-weeks semester-long"`
	MaxGroupSize *int    `json:"maxGroupSize" binding:"omitempty,min=1,max=20"`
	Resources    *string `json:"resources"`
	Requirements *string `json:"requirements"`
}

// ProjectResponse project payload.
type ProjectResponse struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"courseId"`
	CreatedBy    string    `json:"createdBy"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Duration     string    `json:"duration"`
	MaxGroupSize int       `json:"maxGroupSize"`
	Resources    string    `json:"resources,omitempty"`
	Requirements string    `json:"requirements,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateProjectSubmissionRequest POST /api/project-submissions
type CreateProjectSubmissionRequest struct {
	ProjectID   string `json:"projectId" binding:"required,uuid"`
	GithubLink  string `json:"githubLink" binding:"required,githuburl"`
	LiveLink    string `json:"liveLink" binding:"omitempty,url"`
	Description string `json:"description" binding:"required"`
}

// UpdateProjectSubmissionRequest PUT /api/project-submissions/:id
type UpdateProjectSubmissionRequest struct {
	GithubLink  *string `json:"githubLink" binding:"omitempty,githuburl"`
	LiveLink    *string `json:"liveLink" binding:"omitempty,url"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// ProjectSubmissionResponse project submission payload.
type ProjectSubmissionResponse struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"projectId"`
	Project     *ProjectBrief `json:"project,omitempty"`
	StudentID   string        `json:"studentId"`
	Student     *StudentBrief `json:"student,omitempty"`
	Title       string        `json:"title"`
	GithubLink  string        `json:"githubLink"`
	LiveLink    string        `json:"liveLink,omitempty"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	SubmittedAt time.Time     `json:"submittedAt"`
}

// ProjectBrief identifies a project inside a submission.
type ProjectBrief struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	CourseID string `json:"courseId"`
}

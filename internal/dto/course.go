package dto

import (
	"io"
	"time"
)

// CreateCourseRequest POST /api/courses
type CreateCourseRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Duration     string `json:"duration" binding:"required,max=100"`
	CourseUILink string `json:"courseUiLink" binding:"omitempty,url,max=500"`
}

// UpdateCourseRequest PUT /api/courses/:id
type UpdateCourseRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=1,max=200"`
	Duration     *string `json:"duration" binding:"omitempty,min=1,max=100"`
	CourseUILink *string `json:"courseUiLink" binding:"omitempty,max=500"`
}

// CourseResponse course payload.
type CourseResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Duration     string    `json:"duration"`
	CourseUILink string    `json:"courseUiLink,omitempty"`
	SyllabusID   *string   `json:"syllabusId,omitempty"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FileUpload an uploaded multipart file handed to a service.
type FileUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// SyllabusResponse syllabus payload.
type SyllabusResponse struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"courseId"`
	Filename   string    `json:"filename"`
	FileURL    string    `json:"fileUrl"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	UploadedBy string    `json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CourseContentResponse course content payload.
type CourseContentResponse struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"courseId"`
	Title      string    `json:"title"`
	FileURL    string    `json:"fileUrl"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	UploadedBy string    `json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

package model

import "time"

// Project categories
var ProjectCategories = []string{"html-css", "javascript", "bootstrap", "react-angular", "final-project"}

// Project submission statuses
const (
	SubmissionSubmitted   = "submitted"
	SubmissionUnderReview = "under_review"
)

// Project projects table.
type Project struct {
	ID           string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID     string `gorm:"type:uuid;not null"`
	CreatedBy    string `gorm:"type:uuid;not null"`
	Title        string `gorm:"type:varchar(200);not null"`
	Category     string `gorm:"type:varchar(30);not null"`
	Description  string `gorm:"type:text;not null"`
	Duration     string `gorm:"type:varchar(20);not null"`
	MaxGroupSize int    `gorm:"not null;default:1"`
	Resources    string `gorm:"type:text;not null;default:''"`
	Requirements string `gorm:"type:text;not null;default:''"`
	Timestamps
}

// TableName projects
func (Project) TableName() string { return "projects" }

// ProjectSubmission project_submissions table. At most one per (project, student).
type ProjectSubmission struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   string    `gorm:"type:uuid;not null"`
	StudentID   string    `gorm:"type:uuid;not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	GithubLink  string    `gorm:"type:varchar(500);not null"`
	LiveLink    string    `gorm:"type:varchar(500);not null;default:''"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'submitted'"`
	SubmittedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Timestamps

	Project *Project `gorm:"foreignKey:ProjectID"`
	Student *User    `gorm:"foreignKey:StudentID"`
}

// TableName project_submissions
func (ProjectSubmission) TableName() string { return "project_submissions" }

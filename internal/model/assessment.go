package model

import (
	"time"

	"github.com/lib/pq"
)

// Question types
const (
	QuestionMCQ         = "mcq"
	QuestionShortAnswer = "shortAnswer"
)

// MCQOptionCount is the number of options every multiple-choice question carries.
const MCQOptionCount = 4

// Assessment assessments table.
type Assessment struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID  string `gorm:"type:uuid;not null;index"`
	Topic     string `gorm:"type:varchar(200);not null"`
	CreatedBy string `gorm:"type:uuid;not null"`
	Timestamps

	Questions []AssessmentQuestion `gorm:"foreignKey:AssessmentID"`
}

// TableName assessments
func (Assessment) TableName() string { return "assessments" }

// AssessmentQuestion assessment_questions table, ordered by Position.
type AssessmentQuestion struct {
	ID            string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AssessmentID  string         `gorm:"type:uuid;not null"`
	Position      int            `gorm:"not null"`
	QuestionType  string         `gorm:"type:varchar(20);not null"`
	QuestionText  string         `gorm:"type:text;not null"`
	Options       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CorrectAnswer string         `gorm:"type:text;not null"`
}

// TableName assessment_questions
func (AssessmentQuestion) TableName() string { return "assessment_questions" }

// StudentSubmission student_submissions table. At most one per (student, assessment).
type StudentSubmission struct {
	ID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID    string    `gorm:"type:uuid;not null"`
	AssessmentID string    `gorm:"type:uuid;not null"`
	SubmittedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`

	Answers    []SubmissionAnswer `gorm:"foreignKey:SubmissionID"`
	Student    *User              `gorm:"foreignKey:StudentID"`
	Assessment *Assessment        `gorm:"foreignKey:AssessmentID"`
}

// TableName student_submissions
func (StudentSubmission) TableName() string { return "student_submissions" }

// CorrectCount derives the score from the stored flags.
func (s *StudentSubmission) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// SubmissionAnswer submission_answers table. IsCorrect is frozen at submit time.
type SubmissionAnswer struct {
	ID             string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionID   string `gorm:"type:uuid;not null"`
	QuestionID     string `gorm:"type:uuid;not null"`
	SelectedAnswer string `gorm:"type:text;not null;default:''"`
	IsCorrect      bool   `gorm:"not null;default:false"`
}

// TableName submission_answers
func (SubmissionAnswer) TableName() string { return "submission_answers" }

package model

import "time"

// Progress progresses table: the day plan of a user in a course.
type Progress struct {
	ID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID   string `gorm:"type:uuid;not null"`
	CourseID string `gorm:"type:uuid;not null"`
	Timestamps

	Days []ProgressDay `gorm:"foreignKey:ProgressID"`
}

// TableName progresses
func (Progress) TableName() string { return "progresses" }

// ProgressDay progress_days table, ordered by DayIndex (1-based).
type ProgressDay struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProgressID string `gorm:"type:uuid;not null"`
	DayIndex   int    `gorm:"not null"`
	Content    string `gorm:"type:text;not null;default:''"`
	Task       string `gorm:"type:text;not null;default:''"`
	Completed  bool   `gorm:"not null;default:false"`
}

// TableName progress_days
func (ProgressDay) TableName() string { return "progress_days" }

// Enrollment enrollments table.
type Enrollment struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     string    `gorm:"type:uuid;not null"`
	CourseID   string    `gorm:"type:uuid;not null"`
	EnrolledAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`

	Days []EnrollmentDay `gorm:"foreignKey:EnrollmentID"`
}

// TableName enrollments
func (Enrollment) TableName() string { return "enrollments" }

// EnrollmentDay enrollment_days table: a student's note for one calendar day.
type EnrollmentDay struct {
	ID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EnrollmentID string    `gorm:"type:uuid;not null"`
	Date         time.Time `gorm:"type:date;not null"`
	Status       string    `gorm:"type:varchar(50);not null;default:''"`
	Notes        string    `gorm:"type:text;not null;default:''"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName enrollment_days
func (EnrollmentDay) TableName() string { return "enrollment_days" }

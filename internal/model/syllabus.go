package model

// Syllabus syllabi table: one uploaded document attached to a course.
type Syllabus struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID   string `gorm:"type:uuid;not null;index"`
	Filename   string `gorm:"type:varchar(255);not null"`
	FileURL    string `gorm:"column:file_url;type:varchar(1000);not null"`
	FileKey    string `gorm:"type:varchar(500);not null"`
	FileType   string `gorm:"type:varchar(10);not null"`
	FileSize   int64  `gorm:"not null;default:0"`
	UploadedBy string `gorm:"type:uuid;not null"`
	Timestamps
}

// TableName syllabi
func (Syllabus) TableName() string { return "syllabi" }

// CourseContent course_contents table: slide decks and notes of a course.
type CourseContent struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID   string `gorm:"type:uuid;not null;index"`
	Title      string `gorm:"type:varchar(200);not null"`
	FileURL    string `gorm:"column:file_url;type:varchar(1000);not null"`
	FileKey    string `gorm:"type:varchar(500);not null"`
	FileType   string `gorm:"type:varchar(10);not null"`
	FileSize   int64  `gorm:"not null;default:0"`
	UploadedBy string `gorm:"type:uuid;not null"`
	Timestamps
}

// TableName course_contents
func (CourseContent) TableName() string { return "course_contents" }

package model

// Course courses table. CreatedBy is the owning admin.
type Course struct {
	ID           string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string  `gorm:"type:varchar(200);not null"`
	Duration     string  `gorm:"type:varchar(100);not null"`
	CourseUILink string  `gorm:"column:course_ui_link;type:varchar(500);not null;default:''"`
	SyllabusID   *string `gorm:"type:uuid"`
	CreatedBy    string  `gorm:"type:uuid;not null;index"`
	Timestamps
}

// TableName courses
func (Course) TableName() string { return "courses" }

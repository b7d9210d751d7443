package model

import "time"

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceHoliday = "holiday"
)

// AttendanceStatuses in display order.
var AttendanceStatuses = []string{AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHoliday}

// Attendance attendances table, unique on (student_id, date, course_id).
type Attendance struct {
	ID             string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID      string    `gorm:"type:uuid;not null"`
	CourseID       string    `gorm:"type:uuid;not null"`
	Date           time.Time `gorm:"type:date;not null"`
	Status         string    `gorm:"type:varchar(10);not null"`
	GroomingStatus string    `gorm:"type:varchar(10);not null"`
	Remarks        string    `gorm:"type:text;not null;default:''"`
	MarkedBy       *string   `gorm:"type:uuid"`
	Timestamps

	Student *User `gorm:"foreignKey:StudentID"`
}

// TableName attendances
func (Attendance) TableName() string { return "attendances" }

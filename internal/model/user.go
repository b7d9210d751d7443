package model

import (
	"time"

	"gorm.io/datatypes"
)

// Institution is the college a student (or admin) belongs to.
type Institution struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// User users table. Students and admins share it.
type User struct {
	ID           string                          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string                          `gorm:"type:varchar(100);not null"`
	Email        string                          `gorm:"type:varchar(255);not null;uniqueIndex:uk_users_email"`
	PasswordHash string                          `gorm:"type:varchar(255);not null"`
	Role         string                          `gorm:"type:varchar(20);not null;default:'student'"`
	Phone        string                          `gorm:"type:varchar(30);not null;default:''"`
	StudentID    string                          `gorm:"type:varchar(50);not null;uniqueIndex:uk_users_student_id"`
	TrainerName  string                          `gorm:"type:varchar(100);not null;default:''"`
	Institution  datatypes.JSONType[Institution] `gorm:"type:jsonb;not null"`
	JoiningDate  time.Time                       `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Timestamps
}

// TableName users
func (User) TableName() string { return "users" }

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// UserCourse user_courses: the course list of a user.
type UserCourse struct {
	UserID    string    `gorm:"type:uuid;primaryKey"`
	CourseID  string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName user_courses
func (UserCourse) TableName() string { return "user_courses" }

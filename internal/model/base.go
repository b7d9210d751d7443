package model

import "time"

// Roles
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Timestamps audit columns shared by most tables.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// DateLayout is the wire and storage layout of calendar dates.
const DateLayout = "2006-01-02"

package dto

import "time"

// ── requests ──

// InstitutionPayload institution sub-record.
type InstitutionPayload struct {
	Name    string `json:"name" binding:"max=200"`
	Address string `json:"address" binding:"max=500"`
}

// SignupRequest POST /api/auth/signup
type SignupRequest struct {
	Name        string             `json:"name" binding:"required,max=100"`
	Email       string             `json:"email" binding:"required,email"`
	Password    string             `json:"password" binding:"required,min=6,max=72"`
	Phone       string             `json:"phone" binding:"max=30"`
	StudentID   string             `json:"studentId" binding:"required,max=50"`
	TrainerName string             `json:"trainerName" binding:"max=100"`
	Institution InstitutionPayload `json:"institution"`
	Role        string             `json:"role" binding:"omitempty,oneof=student admin"`
}

// LoginRequest POST /api/auth/login, POST /api/admin/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest PUT /api/auth/profile
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=30"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// UpdateAdminProfileRequest PUT /api/admin/profile
type UpdateAdminProfileRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=100"`
	Phone       *string             `json:"phone" binding:"omitempty,max=30"`
	TrainerName *string             `json:"trainerName" binding:"omitempty,min=1,max=100"`
	Institution *InstitutionPayload `json:"institution"`
}

// CreateAdminRequest input of the create-admin command.
type CreateAdminRequest struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	TrainerName string
	Institution InstitutionPayload
}

// ── responses ──

// AuthResponse token plus the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Role        string               `json:"role"`
	Phone       string               `json:"phone"`
	StudentID   string               `json:"studentId"`
	TrainerName string               `json:"trainerName"`
	Institution InstitutionPayload   `json:"institution"`
	JoiningDate time.Time            `json:"joiningDate"`
	Courses     []CourseResponse     `json:"courses,omitempty"`
	Enrollments []EnrollmentResponse `json:"enrollments,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// StudentBrief identifies a student inside other payloads.
type StudentBrief struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"studentId"`
}

// StudentDetailResponse GET /api/admin/student/:id
type StudentDetailResponse struct {
	UserResponse
	Submissions []SubmissionResponse `json:"submissions"`
}

// ImportRowError a rejected roster row.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportedCredential a temporary password generated for a roster row without one.
type ImportedCredential struct {
	Row          int    `json:"row"`
	Email        string `json:"email"`
	TempPassword string `json:"tempPassword"`
}

// ImportStudentsResponse POST /api/admin/students/import
type ImportStudentsResponse struct {
	Total       int                  `json:"total"`
	Created     int                  `json:"created"`
	Failed      int                  `json:"failed"`
	Errors      []ImportRowError     `json:"errors,omitempty"`
	Credentials []ImportedCredential `json:"credentials,omitempty"`
}

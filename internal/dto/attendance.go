package dto

import "time"

// MarkAttendanceRequest POST /api/attendance
type MarkAttendanceRequest struct {
	StudentID      string `json:"studentId" binding:"required,uuid"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	CourseID       string `json:"courseId" binding:"required,uuid"`
	Status         string `json:"status" binding:"required,oneof=present absent late holiday"`
	GroomingStatus string `json:"groomingStatus" binding:"required,oneof=present absent"`
	Remarks        string `json:"remarks" binding:"max=1000"`
}

// BulkAttendanceRecord one student of a bulk request.
type BulkAttendanceRecord struct {
	StudentID      string `json:"studentId" binding:"required,uuid"`
	Status         string `json:"status" binding:"required,oneof=present absent late holiday"`
	GroomingStatus string `json:"groomingStatus" binding:"required,oneof=present absent"`
	Remarks        string `json:"remarks" binding:"max=1000"`
}

// BulkAttendanceRequest POST /api/attendance/bulk
type BulkAttendanceRequest struct {
	Date              string                 `json:"date" binding:"required,datetime=2006-01-02"`
	CourseID          string                 `json:"courseId" binding:"required,uuid"`
	AttendanceRecords []BulkAttendanceRecord `json:"attendanceRecords" binding:"required,min=1,max=500,dive"`
}

// BulkAttendanceResult outcome for one student of a bulk request.
type BulkAttendanceResult struct {
	StudentID  string              `json:"studentId"`
	Success    bool                `json:"success"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// UpdateAttendanceRequest PUT /api/attendance/:id
type UpdateAttendanceRequest struct {
	Status         *string `json:"status" binding:"omitempty,oneof=present absent late holiday"`
	GroomingStatus *string `json:"groomingStatus" binding:"omitempty,oneof=present absent"`
	Remarks        *string `json:"remarks" binding:"omitempty,max=1000"`
}

// AttendanceQuery GET /api/attendance/student/:studentId
type AttendanceQuery struct {
	CourseID  string `form:"courseId" binding:"omitempty,uuid"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// AttendanceResponse attendance payload. Date is YYYY-MM-DD.
type AttendanceResponse struct {
	ID             string        `json:"id"`
	StudentID      string        `json:"studentId"`
	Student        *StudentBrief `json:"student,omitempty"`
	CourseID       string        `json:"courseId"`
	Date           string        `json:"date"`
	Status         string        `json:"status"`
	GroomingStatus string        `json:"groomingStatus"`
	Remarks        string        `json:"remarks"`
	MarkedBy       *string       `json:"markedBy,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// StatusCount number of records with one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AttendanceSummaryResponse GET /api/attendance/course/:courseId/summary
type AttendanceSummaryResponse struct {
	CourseID string        `json:"courseId"`
	Total    int64         `json:"total"`
	Counts   []StatusCount `json:"counts"`
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// AttendanceHandler daily attendance of course students.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// MarkAttendance POST /api/attendance
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	record, err := h.attendanceSvc.Mark(c.Request.Context(), actor, &req)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.Created(c, record)
}

// MarkBulk POST /api/attendance/bulk
func (h *AttendanceHandler) MarkBulk(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.BulkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	results, err := h.attendanceSvc.MarkBulk(c.Request.Context(), actor, &req)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, gin.H{"results": results})
}

// ListByDate GET /api/attendance/date/:date/course/:courseId
func (h *AttendanceHandler) ListByDate(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return
	}

	list, err := h.attendanceSvc.ListByDateAndCourse(c.Request.Context(), actor, c.Param("date"), courseID)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListByStudent GET /api/attendance/student/:studentId?courseId&startDate&endDate
func (h *AttendanceHandler) ListByStudent(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	studentID, ok := MustGetUUIDParam(c, "studentId")
	if !ok {
		return
	}

	var q dto.AttendanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	list, err := h.attendanceSvc.ListByStudent(c.Request.Context(), actor, studentID, &q)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// UpdateAttendance PUT /api/attendance/:id
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	record, err := h.attendanceSvc.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, record)
}

// DeleteAttendance DELETE /api/attendance/:id
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.attendanceSvc.Delete(c.Request.Context(), actor, id); err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OKWithMessage(c, "attendance deleted", nil)
}

// Summary GET /api/attendance/course/:courseId/summary
func (h *AttendanceHandler) Summary(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return
	}

	summary, err := h.attendanceSvc.Summary(c.Request.Context(), actor, courseID)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, summary)
}

// Export downloads the course attendance as xlsx.
// GET /api/attendance/course/:courseId/export
func (h *AttendanceHandler) Export(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return
	}

	buf, filename, err := h.attendanceSvc.Export(c.Request.Context(), actor, courseID)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	attachment(c, filename, xlsxContentType, buf.Bytes())
}

// handleAttendanceError maps attendance errors.
func handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttendanceNotFound):
		response.NotFound(c, 16001, "attendance record not found")
	case errors.Is(err, service.ErrExportGenerateFail):
		_ = c.Error(err)
		response.InternalError(c)
	default:
		handleCommonError(c, err)
	}
}

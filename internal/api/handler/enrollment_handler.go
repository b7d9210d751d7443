package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// EnrollmentHandler enrollment, day plans and completion.
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler creates an EnrollmentHandler.
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// AdminEnroll POST /api/admin/enroll
func (h *EnrollmentHandler) AdminEnroll(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.AdminEnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.enrollmentSvc.AdminEnroll(c.Request.Context(), actor, &req)
	if err != nil {
		handleEnrollmentError(c, err)
		return
	}

	response.Created(c, result)
}

// SelfEnroll POST /api/auth/enroll
func (h *EnrollmentHandler) SelfEnroll(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.SelfEnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	enrollment, err := h.enrollmentSvc.SelfEnroll(c.Request.Context(), actor, req.CourseID)
	if err != nil {
		handleEnrollmentError(c, err)
		return
	}

	response.Created(c, enrollment)
}

// UpdateDayNote PUT /api/auth/progress
func (h *EnrollmentHandler) UpdateDayNote(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.DayNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	enrollment, err := h.enrollmentSvc.UpdateDayNote(c.Request.Context(), actor, &req)
	if err != nil {
		handleEnrollmentError(c, err)
		return
	}

	response.OK(c, enrollment)
}

// GetProgress GET /api/progress/:userId/:courseId
func (h *EnrollmentHandler) GetProgress(c *gin.Context) {
	actor, userID, courseID, ok := progressParams(c)
	if !ok {
		return
	}

	progress, err := h.enrollmentSvc.GetProgress(c.Request.Context(), actor, userID, courseID)
	if err != nil {
		handleEnrollmentError(c, err)
		return
	}

	response.OK(c, progress)
}

// UpdateCompletion PUT /api/progress/update-completion
func (h *EnrollmentHandler) UpdateCompletion(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	progress, err := h.enrollmentSvc.UpdateCompletion(c.Request.Context(), actor, &req)
	if err != nil {
		handleEnrollmentError(c, err)
		return
	}

	response.OK(c, progress)
}

// ExportCalendar downloads the day plan as an .ics file.
// GET /api/progress/:userId/:courseId/calendar
func (h *EnrollmentHandler) ExportCalendar(c *gin.Context) {
	actor, userID, courseID, ok := progressParams(c)
	if !ok {
		return
	}

	data, filename, err := h.enrollmentSvc.ExportCalendar(c.Request.Context(), actor, userID, courseID)
	if err != nil {
		handleEnrollmentError(c, err)
		return
	}

	attachment(c, filename, icsContentType, data)
}

func progressParams(c *gin.Context) (service.Actor, string, string, bool) {
	actor, ok := MustGetActor(c)
	if !ok {
		return actor, "", "", false
	}
	userID, ok := MustGetUUIDParam(c, "userId")
	if !ok {
		return actor, "", "", false
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return actor, "", "", false
	}
	return actor, userID, courseID, true
}

// handleEnrollmentError maps enrollment and progress errors.
func handleEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAlreadyEnrolled):
		response.BadRequest(c, 17001, "student is already enrolled in this course")
	case errors.Is(err, service.ErrProgressNotFound):
		response.NotFound(c, 17002, "progress not found")
	case errors.Is(err, service.ErrDayNotFound):
		response.NotFound(c, 17003, "day not found in progress")
	case errors.Is(err, service.ErrEnrollmentNotFound):
		response.NotFound(c, 17004, "enrollment not found")
	case errors.Is(err, service.ErrDuplicateDayIndex):
		response.BadRequest(c, 17005, err.Error())
	default:
		handleCommonError(c, err)
	}
}

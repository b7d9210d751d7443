package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// AssessmentHandler assessments, submissions and grading.
type AssessmentHandler struct {
	assessmentSvc service.AssessmentService
}

// NewAssessmentHandler creates an AssessmentHandler.
func NewAssessmentHandler(assessmentSvc service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// CreateAssessment POST /api/assessments
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	assessment, err := h.assessmentSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleAssessmentError(c, err)
		return
	}

	response.Created(c, assessment)
}

// ListCourseAssessments GET /api/assessments/:courseId
func (h *AssessmentHandler) ListCourseAssessments(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return
	}

	list, err := h.assessmentSvc.ListByCourse(c.Request.Context(), actor, courseID)
	if err != nil {
		handleAssessmentError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetAssessment GET /api/assessment/:id
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	assessment, err := h.assessmentSvc.Get(c.Request.Context(), actor, id)
	if err != nil {
		handleAssessmentError(c, err)
		return
	}

	response.OK(c, assessment)
}

// SubmitAssessment grades and stores the caller's answers.
// POST /api/assessment/:id/submit
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	submission, err := h.assessmentSvc.Submit(c.Request.Context(), actor, id, &req)
	if err != nil {
		handleAssessmentError(c, err)
		return
	}

	response.Created(c, submission)
}

// ListSubmissions GET /api/assessment/:id/submissions
func (h *AssessmentHandler) ListSubmissions(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.assessmentSvc.ListSubmissions(c.Request.Context(), actor, id)
	if err != nil {
		handleAssessmentError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListCourseSubmissions GET /api/course/:courseId/submissions
func (h *AssessmentHandler) ListCourseSubmissions(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return
	}

	list, err := h.assessmentSvc.ListCourseSubmissions(c.Request.Context(), actor, courseID)
	if err != nil {
		handleAssessmentError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListStudentSubmissions GET /api/submissions/student/:studentId
func (h *AssessmentHandler) ListStudentSubmissions(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	studentID, ok := MustGetUUIDParam(c, "studentId")
	if !ok {
		return
	}

	list, err := h.assessmentSvc.ListStudentSubmissions(c.Request.Context(), actor, studentID)
	if err != nil {
		handleAssessmentError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// handleAssessmentError maps assessment errors.
func handleAssessmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound):
		response.NotFound(c, 14001, "assessment not found")
	case errors.Is(err, service.ErrInvalidQuestion):
		response.BadRequest(c, 14002, err.Error())
	case errors.Is(err, service.ErrAlreadySubmitted):
		response.BadRequest(c, 14003, "assessment already submitted")
	case errors.Is(err, service.ErrNoAssessments):
		response.NotFound(c, 14004, "no assessments found for this course")
	case errors.Is(err, service.ErrNoSubmissions):
		response.NotFound(c, 14005, "no submissions found for this assessment")
	default:
		handleCommonError(c, err)
	}
}

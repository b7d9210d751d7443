package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// CourseHandler course CRUD for the owning admin.
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	courses, err := h.courseSvc.List(c.Request.Context(), actor)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, gin.H{"list": courses})
}

// GetCourse GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseSvc.Get(c.Request.Context(), actor, id)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, course)
}

// CreateCourse POST /api/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.Created(c, course)
}

// UpdateCourse PUT /api/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, course)
}

// DeleteCourse DELETE /api/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), actor, id); err != nil {
		handleCommonError(c, err)
		return
	}

	response.OKWithMessage(c, "course deleted", nil)
}

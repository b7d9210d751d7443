package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// SyllabusHandler syllabus documents.
type SyllabusHandler struct {
	syllabusSvc service.SyllabusService
}

// NewSyllabusHandler creates a SyllabusHandler.
func NewSyllabusHandler(syllabusSvc service.SyllabusService) *SyllabusHandler {
	return &SyllabusHandler{syllabusSvc: syllabusSvc}
}

// UploadSyllabus POST /api/syllabus (multipart: courseId, syllabus)
func (h *SyllabusHandler) UploadSyllabus(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	upload, f, err := formFile(c, "syllabus")
	if err != nil {
		handleSyllabusError(c, err)
		return
	}
	defer f.Close()

	courseID := c.PostForm("courseId")
	if _, err := uuid.Parse(courseID); err != nil {
		response.BadRequest(c, 10001, "invalid courseId")
		return
	}

	syllabus, err := h.syllabusSvc.Upload(c.Request.Context(), actor, courseID, upload)
	if err != nil {
		handleSyllabusError(c, err)
		return
	}

	response.Created(c, gin.H{"syllabus": syllabus})
}

// ListSyllabi GET /api/syllabus
func (h *SyllabusHandler) ListSyllabi(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	list, err := h.syllabusSvc.List(c.Request.Context(), actor)
	if err != nil {
		handleSyllabusError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetCourseSyllabus GET /api/syllabus/:courseId
func (h *SyllabusHandler) GetCourseSyllabus(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return
	}

	syllabus, err := h.syllabusSvc.GetByCourse(c.Request.Context(), actor, courseID)
	if err != nil {
		handleSyllabusError(c, err)
		return
	}

	response.OK(c, gin.H{"syllabus": syllabus})
}

// DeleteSyllabus DELETE /api/syllabus/:id
func (h *SyllabusHandler) DeleteSyllabus(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.syllabusSvc.Delete(c.Request.Context(), actor, id); err != nil {
		handleSyllabusError(c, err)
		return
	}

	response.OKWithMessage(c, "syllabus deleted", nil)
}

// CourseContentHandler lecture files of a course.
type CourseContentHandler struct {
	contentSvc service.CourseContentService
}

// NewCourseContentHandler creates a CourseContentHandler.
func NewCourseContentHandler(contentSvc service.CourseContentService) *CourseContentHandler {
	return &CourseContentHandler{contentSvc: contentSvc}
}

// UploadContent POST /api/admin/course-content (multipart: courseId, title, file)
func (h *CourseContentHandler) UploadContent(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	upload, f, err := formFile(c, "file")
	if err != nil {
		handleSyllabusError(c, err)
		return
	}
	defer f.Close()

	courseID := c.PostForm("courseId")
	if _, err := uuid.Parse(courseID); err != nil {
		response.BadRequest(c, 10001, "invalid courseId")
		return
	}

	content, err := h.contentSvc.Upload(c.Request.Context(), actor, courseID, c.PostForm("title"), upload)
	if err != nil {
		handleSyllabusError(c, err)
		return
	}

	response.Created(c, content)
}

// ListContent GET /api/admin/course-content/:courseId
func (h *CourseContentHandler) ListContent(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return
	}

	list, err := h.contentSvc.ListByCourse(c.Request.Context(), actor, courseID)
	if err != nil {
		handleSyllabusError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// DeleteContent DELETE /api/admin/course-content/:id
func (h *CourseContentHandler) DeleteContent(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentSvc.Delete(c.Request.Context(), actor, id); err != nil {
		handleSyllabusError(c, err)
		return
	}

	response.OKWithMessage(c, "course content deleted", nil)
}

// handleSyllabusError maps syllabus and course content errors.
func handleSyllabusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSyllabusNotFound):
		response.NotFound(c, 13001, "syllabus not found")
	case errors.Is(err, service.ErrContentNotFound):
		response.NotFound(c, 13002, "course content not found")
	default:
		handleCommonError(c, err)
	}
}

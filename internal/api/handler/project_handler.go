package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// ProjectHandler course projects.
type ProjectHandler struct {
	projectSvc service.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// CreateProject POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	project, err := h.projectSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.Created(c, project)
}

// ListProjects GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	list, err := h.projectSvc.List(c.Request.Context(), actor)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListCourseProjects serves both the plain and the per-category listing.
// GET /api/projects/course/:courseId
// GET /api/projects/course/:courseId/category/:category
func (h *ProjectHandler) ListCourseProjects(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return
	}

	list, err := h.projectSvc.ListByCourse(c.Request.Context(), actor, courseID, c.Param("category"))
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetProject GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectSvc.Get(c.Request.Context(), actor, id)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, project)
}

// UpdateProject PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	project, err := h.projectSvc.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, project)
}

// DeleteProject DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectSvc.Delete(c.Request.Context(), actor, id); err != nil {
		handleProjectError(c, err)
		return
	}

	response.OKWithMessage(c, "project deleted", nil)
}

// ProjectSubmissionHandler student work for projects.
type ProjectSubmissionHandler struct {
	submissionSvc service.ProjectSubmissionService
}

// NewProjectSubmissionHandler creates a ProjectSubmissionHandler.
func NewProjectSubmissionHandler(submissionSvc service.ProjectSubmissionService) *ProjectSubmissionHandler {
	return &ProjectSubmissionHandler{submissionSvc: submissionSvc}
}

// CreateSubmission POST /api/project-submissions
func (h *ProjectSubmissionHandler) CreateSubmission(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateProjectSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	sub, err := h.submissionSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.Created(c, sub)
}

// ListByProject GET /api/project-submissions/project/:projectId
func (h *ProjectSubmissionHandler) ListByProject(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	projectID, ok := MustGetUUIDParam(c, "projectId")
	if !ok {
		return
	}

	list, err := h.submissionSvc.ListByProject(c.Request.Context(), actor, projectID)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetMySubmission GET /api/project-submissions/project/:projectId/my-submission
func (h *ProjectSubmissionHandler) GetMySubmission(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	projectID, ok := MustGetUUIDParam(c, "projectId")
	if !ok {
		return
	}

	sub, err := h.submissionSvc.GetMine(c.Request.Context(), actor, projectID)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, sub)
}

// ListByStudent GET /api/project-submissions/student/:studentId
func (h *ProjectSubmissionHandler) ListByStudent(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	studentID, ok := MustGetUUIDParam(c, "studentId")
	if !ok {
		return
	}

	list, err := h.submissionSvc.ListByStudent(c.Request.Context(), actor, studentID)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListByCourse GET /api/project-submissions/course/:courseId
func (h *ProjectSubmissionHandler) ListByCourse(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	courseID, ok := MustGetUUIDParam(c, "courseId")
	if !ok {
		return
	}

	list, err := h.submissionSvc.ListByCourse(c.Request.Context(), actor, courseID)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetSubmission GET /api/project-submissions/:id
func (h *ProjectSubmissionHandler) GetSubmission(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := h.submissionSvc.Get(c.Request.Context(), actor, id)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, sub)
}

// UpdateSubmission PUT /api/project-submissions/:id
func (h *ProjectSubmissionHandler) UpdateSubmission(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	sub, err := h.submissionSvc.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		handleProjectError(c, err)
		return
	}

	response.OK(c, sub)
}

// DeleteSubmission DELETE /api/project-submissions/:id
func (h *ProjectSubmissionHandler) DeleteSubmission(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.submissionSvc.Delete(c.Request.Context(), actor, id); err != nil {
		handleProjectError(c, err)
		return
	}

	response.OKWithMessage(c, "project submission deleted", nil)
}

// handleProjectError maps project and project submission errors.
func handleProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		response.NotFound(c, 15001, "project not found")
	case errors.Is(err, service.ErrProjectSubmissionNotFound):
		response.NotFound(c, 15002, "project submission not found")
	case errors.Is(err, service.ErrProjectAlreadySubmitted):
		response.BadRequest(c, 15003, "you have already submitted this project")
	case errors.Is(err, service.ErrInvalidCategory):
		response.BadRequest(c, 15004, "invalid project category")
	default:
		handleCommonError(c, err)
	}
}

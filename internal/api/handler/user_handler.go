package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// UserHandler profiles and the admin's student roster.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetProfile GET /api/auth/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, user)
}

// UpdateProfile PUT /api/auth/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	user, err := h.userSvc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, user)
}

// GetAdminProfile GET /api/admin/profile
func (h *UserHandler) GetAdminProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.GetAdminProfile(c.Request.Context(), userID)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, user)
}

// UpdateAdminProfile PUT /api/admin/profile
func (h *UserHandler) UpdateAdminProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	user, err := h.userSvc.UpdateAdminProfile(c.Request.Context(), userID, &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, user)
}

// ListStudents GET /api/admin/students
func (h *UserHandler) ListStudents(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	students, err := h.userSvc.ListStudents(c.Request.Context(), actor)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, gin.H{"list": students})
}

// GetStudentDetail GET /api/admin/student/:id
func (h *UserHandler) GetStudentDetail(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := MustGetUUIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.userSvc.GetStudentDetail(c.Request.Context(), actor, id)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, detail)
}

// ImportStudents creates students from an uploaded xlsx roster.
// POST /api/admin/students/import (multipart field "file")
func (h *UserHandler) ImportStudents(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	upload, f, err := formFile(c, "file")
	if err != nil {
		handleAuthError(c, err)
		return
	}
	defer f.Close()

	rows, err := h.userSvc.ParseImportFile(upload.Reader)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	result, err := h.userSvc.ImportStudents(c.Request.Context(), actor, rows)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

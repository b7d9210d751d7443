package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// AuthHandler signup and login.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Signup registers a user and returns a token.
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.authSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Created(c, result)
}

// Login authenticates any role.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// AdminLogin authenticates admins only.
// POST /api/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.authSvc.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// handleAuthError maps auth and user errors.
func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.BadRequest(c, 11001, "invalid email or password")
	case errors.Is(err, service.ErrEmailExists):
		response.BadRequest(c, 11002, "email already registered")
	case errors.Is(err, service.ErrStudentIDExists):
		response.BadRequest(c, 11003, "student id already registered")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11004, "user not found")
	case errors.Is(err, service.ErrNotAdmin):
		response.Forbidden(c, 11005, "access denied, admin only")
	case errors.Is(err, service.ErrImportNoData),
		errors.Is(err, service.ErrImportTooManyRows),
		errors.Is(err, service.ErrImportBadHeader),
		errors.Is(err, service.ErrImportUnreadable):
		response.BadRequest(c, 11006, err.Error())
	default:
		handleCommonError(c, err)
	}
}

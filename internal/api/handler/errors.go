package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/api/middleware"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// handleCommonError maps the errors several modules share and falls back to 500.
// The cause of a 500 is attached to the context for the request logger.
func handleCommonError(c *gin.Context, err error) {
	switch {
	case middleware.IsBodyTooLarge(err):
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
	case errors.Is(err, service.ErrNoPermission):
		response.Forbidden(c, 10003, "access denied")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 12001, "course not found")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11007, "student not found")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 16002, err.Error())
	case errors.Is(err, service.ErrInvalidFileType):
		response.BadRequest(c, 13003, "invalid file type")
	case errors.Is(err, service.ErrFileRequired):
		response.BadRequest(c, 13004, "file is required")
	case errors.Is(err, service.ErrUploadFailed):
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, 13005, "file upload failed")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

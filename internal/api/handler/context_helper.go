package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/api/middleware"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// MustGetUserID extracts the user id set by JWTAuth.
// On failure it writes a 401 and the caller should return.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetActor extracts the caller's id and role.
func MustGetActor(c *gin.Context) (service.Actor, bool) {
	id, ok := MustGetUserID(c)
	if !ok {
		return service.Actor{}, false
	}
	role := c.GetString(middleware.CtxRole)
	if role == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return service.Actor{}, false
	}
	return service.Actor{ID: id, Role: role}, true
}

// MustGetUUIDParam reads a path parameter that must be a uuid.
func MustGetUUIDParam(c *gin.Context, name string) (string, bool) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		response.BadRequest(c, 10001, "invalid "+name)
		return "", false
	}
	return v, true
}

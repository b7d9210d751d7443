package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/jwt"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxUser   = "user"
)

// UserLoader resolves the token holder. repository.UserRepository satisfies it.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// JWTAuth verifies the Bearer token and loads the user it was issued to.
// The role stored in the context comes from the live record, not the claims.
func JWTAuth(jwtMgr *jwt.Manager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Unauthorized(c, 10002, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			_ = c.Error(err)
			response.InternalError(c)
			c.Abort()
			return
		}
		if user == nil || err != nil {
			response.Unauthorized(c, 10002, "user no longer exists")
			c.Abort()
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxRole, user.Role)
		c.Set(CtxUser, user)

		c.Next()
	}
}

// RoleAuth rejects callers whose role is not one of allowedRoles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role == "" {
			response.Unauthorized(c, 10002, "not authenticated")
			c.Abort()
			return
		}

		for _, r := range allowedRoles {
			if role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "access denied")
		c.Abort()
	}
}

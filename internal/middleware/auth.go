package middleware

import (
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/util"
	"istudy_lab_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 校验 Bearer token（或 ?token=），通过后把 claims 写入上下文
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.String("path", c.FullPath()), zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetUserInContext(c, claims)
		c.Next()
	}
}

// RoleMiddleware 需要在 AuthMiddleware 之后使用，管理员总是放行
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := user.Role == model.Admin
		for _, role := range roles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			logger.Log.Debug("角色验证失败",
				zap.Uint("userID", user.UserID),
				zap.String("role", string(user.Role)),
				zap.String("path", c.FullPath()))
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"context"

	"terminal-terrace/medium/internal/dto"
	"terminal-terrace/medium/internal/model/user"
	"terminal-terrace/medium/internal/pkg"
	"terminal-terrace/medium/packages/authsdk"
	"terminal-terrace/medium/packages/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID = "user_id"
	ContextUser   = "current_user"
)

// UserFinder 按 ID 加载令牌对应的用户
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*user.User, error)
}

// parseToken 从 Authorization header 中解析 token，支持 "Token <jwt>" 与 "Bearer <jwt>"
func parseToken(c *gin.Context) (*authsdk.UserContext, error) {
	tokenString, err := authsdk.ExtractTokenFromHeader(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}
	return pkg.ParseAccessToken(tokenString)
}

// OptionalJWTAuth 全局中间件：令牌有效且用户存在时写入上下文，否则按匿名继续
func OptionalJWTAuth(finder UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			c.Next()
			return
		}

		u, err := finder.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			zap.L().Warn("load token user failed", zap.Uint("user_id", claims.UserID), zap.Error(err))
			c.Next()
			return
		}
		if u == nil {
			c.Next()
			return
		}

		c.Set(ContextUserID, u.ID)
		c.Set(ContextUser, u)
		c.Next()
	}
}

// RequireAuth 必需认证，未解析出用户时返回 401
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("authentication required"),
			))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser 返回当前请求的用户，匿名时 ok 为 false
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok && u != nil
}

// CurrentUserID 匿名时返回 0
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

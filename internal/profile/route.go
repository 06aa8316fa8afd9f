package profile

import (
	"terminal-terrace/medium/internal/middleware"
	"terminal-terrace/medium/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewProfileHandler(NewProfileService(user.NewUserRepository(db), NewFollowRepository(db)))

	profiles := r.Group("/profiles")
	{
		// 可选认证
		profiles.GET("/:username", h.GetProfile)

		authRequired := profiles.Group("")
		authRequired.Use(middleware.RequireAuth())
		{
			authRequired.POST("/:username/follow", h.Follow)
			authRequired.DELETE("/:username/follow", h.Unfollow)
		}
	}
}

package user

import (
	"terminal-terrace/medium/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewUserHandler(NewUserService(NewUserRepository(db)))

	users := r.Group("/users")
	{
		users.POST("", h.Register)
		users.POST("/login", h.Login)
	}

	current := r.Group("/user")
	current.Use(middleware.RequireAuth())
	{
		current.GET("", h.CurrentUser)
		current.PUT("", h.UpdateUser)
	}
}

package article

import (
	"terminal-terrace/medium/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, service *ArticleService) {
	h := NewArticleHandler(service)

	articles := r.Group("/articles")
	{
		// 可选认证：登录时计算 isFavorited
		articles.GET("", h.ListArticles)

		authRequired := articles.Group("")
		authRequired.Use(middleware.RequireAuth())
		{
			authRequired.POST("", h.CreateArticle)
			authRequired.GET("/:slug", h.GetArticle)
			authRequired.PUT("/:slug", h.UpdateArticle)
			authRequired.DELETE("/:slug", h.DeleteArticle)
			authRequired.POST("/:slug/favorite", h.FavoriteArticle)
			authRequired.DELETE("/:slug/favorite", h.UnfavoriteArticle)
		}
	}
}

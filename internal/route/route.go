package route

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"terminal-terrace/medium/config"
	"terminal-terrace/medium/internal/article"
	"terminal-terrace/medium/internal/logger"
	"terminal-terrace/medium/internal/middleware"
	"terminal-terrace/medium/internal/profile"
	"terminal-terrace/medium/internal/tag"
	"terminal-terrace/medium/internal/user"
	"terminal-terrace/medium/packages/database"
)

func initRoute(r *gin.Engine, db *gorm.DB, redisClient *database.RedisClient) {
	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", healthz(db))

	tagService := tag.NewTagService(tag.NewTagRepository(db), tag.NewTagCache(redisClient))
	articleService := article.NewArticleService(
		article.NewArticleRepository(db),
		user.NewUserRepository(db),
		tagService,
		article.ListLimits{
			Default: config.Conf.Article.DefaultLimit,
			Max:     config.Conf.Article.MaxLimit,
		},
	)

	api := r.Group("/api")
	// 可选认证：令牌无效时按匿名处理，由各路由组自行要求登录
	api.Use(middleware.OptionalJWTAuth(user.NewUserRepository(db)))
	{
		user.RegisterRoutes(api, db)
		profile.RegisterRoutes(api, db)
		article.RegisterRoutes(api, articleService)
		tag.RegisterRoutes(api, tagService)
	}
}

func SetupRouter(db *gorm.DB, redisClient *database.RedisClient) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger(zap.L()))

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{config.Conf.Server.FrontendURL},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	initRoute(r, db, redisClient)

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			zap.L().Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

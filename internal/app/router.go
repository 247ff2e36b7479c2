package app

import (
	"learnbotx_backend/docs"
	"learnbotx_backend/internal/config"
	"learnbotx_backend/internal/middleware"
	"learnbotx_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.GET("/auth/me", c.auth.Me)

		authorized.PUT("/user/profile", c.user.UpdateProfile)
		authorized.POST("/user/avatar/upload", c.user.UploadAvatar)
		authorized.GET("/user/badges", c.user.GetBadges)

		authorized.GET("/progress", c.progress.GetProgress)
		authorized.PUT("/progress/step/:stepId", c.progress.UpdateStep)
		authorized.POST("/progress/quiz", c.progress.RecordQuiz)
		authorized.GET("/progress/stats", c.progress.GetStats)
		authorized.GET("/leaderboard", c.progress.Leaderboard)

		authorized.GET("/notes", c.note.List)
		authorized.POST("/notes", c.note.Create)
		authorized.PUT("/notes/:id", c.note.Update)
		authorized.DELETE("/notes/:id", c.note.Delete)

		chat := authorized.Group("/chat")
		{
			chat.POST("/message", c.chat.SendMessage)
			chat.GET("/history", c.chat.History)
			chat.GET("/:chatId", c.chat.Get)
			chat.DELETE("/:chatId", c.chat.Delete)
		}
	}
}

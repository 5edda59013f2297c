package app

import (
	"istudy_lab_backend/docs"
	"istudy_lab_backend/internal/config"
	"istudy_lab_backend/internal/middleware"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		a.registerProgressRoutes(authGroup, c)
	}

	// 3. 管理员路由
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWT.Secret), middleware.RoleMiddleware(model.Admin))
	{
		a.registerAdminRoutes(admin, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		quiz := public.Group("/quiz")
		{
			quiz.GET("", c.quiz.GetQuestions)
			quiz.POST("/submit", c.quiz.SubmitQuiz)
			quiz.GET("/stats", c.quiz.GetStats)
		}
	}
}

func (a *App) registerProgressRoutes(group *gin.RouterGroup, c *controllers) {
	progress := group.Group("/progress")
	{
		progress.GET("/weekly", c.progress.GetWeeklyProgress)
		progress.POST("/record", c.progress.RecordProgress)
		progress.GET("/summary", c.progress.GetProgressSummary)
		progress.GET("/questions", c.progress.GetQuestionHistory)
		progress.GET("/quiz-progress", c.progress.GetQuizProgress)
	}
}

func (a *App) registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/questions", c.admin.GetQuestions)
	group.POST("/questions", c.admin.CreateQuestion)
	group.PUT("/questions/:id", c.admin.UpdateQuestion)
	group.DELETE("/questions/:id", c.admin.DeleteQuestion)
	group.POST("/add-sample-questions", c.admin.AddSampleQuestions)
}

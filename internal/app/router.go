package app

import (
	"fundi_backend/docs"
	"fundi_backend/internal/config"
	"fundi_backend/internal/middleware"
	"fundi_backend/internal/model"
	"fundi_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/profile", c.auth.GetProfile)

		// Course catalogue is readable by every authenticated role.
		api.GET("/courses", c.course.ListCourses)
		api.GET("/courses/:id", c.course.GetCourse)
		api.GET("/courses/:id/levels", c.course.ListLevels)

		authoring := api.Group("/")
		authoring.Use(middleware.RequireCapability(model.CapManageCourses))
		{
			authoring.POST("/courses", c.course.CreateCourse)
			authoring.PUT("/courses/:id/levels", c.course.ReplaceLevels)
			authoring.POST("/courses/:id/careers", c.course.AddCareer)
		}

		learners := api.Group("/learners")
		{
			learners.POST("", middleware.RequireCapability(model.CapManageLearners), c.learner.CreateLearner)
			learners.GET("", c.learner.ListLearners)
			learners.GET("/:id", middleware.RequireCapability(model.CapViewProgress), c.learner.GetLearner)
			learners.GET("/:id/achievements", middleware.RequireCapability(model.CapViewProgress), c.learner.ListAchievements)
			learners.GET("/:id/enrollments", middleware.RequireCapability(model.CapViewProgress), c.enrollment.ListByLearner)

			learners.POST("/:id/artifacts", middleware.RequireCapability(model.CapCaptureArtifacts), c.artifact.CreateArtifact)
			learners.GET("/:id/artifacts", middleware.RequireCapability(model.CapViewProgress), c.artifact.ListByLearner)

			learners.POST("/:id/pathway", middleware.RequireCapability(model.CapScorePathways), c.pathway.CaptureAndScore)
			learners.GET("/:id/pathway", middleware.RequireCapability(model.CapViewProgress), c.pathway.History)
			learners.GET("/:id/pathway/latest", middleware.RequireCapability(model.CapViewProgress), c.pathway.LatestInputs)
		}

		api.GET("/schools/:id/learners", middleware.RequireCapability(model.CapViewProgress), c.learner.ListBySchool)

		api.GET("/artifacts/:id", middleware.RequireCapability(model.CapViewProgress), c.artifact.GetArtifact)

		enrollments := api.Group("/enrollments")
		{
			enrollments.POST("", middleware.RequireCapability(model.CapEnrollLearners), c.enrollment.Enroll)
			enrollments.DELETE("/:id", middleware.RequireCapability(model.CapEnrollLearners), c.enrollment.Withdraw)
			enrollments.GET("/:id/progress", middleware.RequireCapability(model.CapViewProgress), c.enrollment.GetProgress)
			enrollments.POST("/:id/promote", middleware.RequireCapability(model.CapRecordProgress), c.progress.CheckAndPromote)
		}

		progress := api.Group("/progress")
		{
			progress.PATCH("/:id", middleware.RequireCapability(model.CapRecordProgress), c.progress.UpdateProgress)
			progress.POST("/:id/confirm", middleware.RequireCapability(model.CapConfirmCompletion), c.progress.ConfirmCompletion)
		}
	}
}

package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fundi_backend/internal/config"
	"fundi_backend/internal/controller"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/service"
	"fundi_backend/pkg/database"
	"fundi_backend/pkg/logger"
	"fundi_backend/pkg/monitoring"
	"fundi_backend/pkg/security"
	"fundi_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	learner     *repository.LearnerRepository
	course      *repository.CourseRepository
	level       *repository.LevelRepository
	enrollment  *repository.EnrollmentRepository
	progress    *repository.ProgressRepository
	achievement *repository.AchievementRepository
	artifact    *repository.ArtifactRepository
	pathway     *repository.PathwayRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	learner     *service.LearnerService
	course      *service.CourseService
	progression *service.ProgressionService
	artifact    *service.ArtifactService
	pathway     *service.PathwayService
}

type controllers struct {
	auth       *controller.AuthController
	learner    *controller.LearnerController
	course     *controller.CourseController
	enrollment *controller.EnrollmentController
	progress   *controller.ProgressController
	artifact   *controller.ArtifactController
	pathway    *controller.PathwayController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		learner:     repository.NewLearnerRepository(db),
		course:      repository.NewCourseRepository(db),
		level:       repository.NewLevelRepository(db),
		enrollment:  repository.NewEnrollmentRepository(db),
		progress:    repository.NewProgressRepository(db),
		achievement: repository.NewAchievementRepository(db),
		artifact:    repository.NewArtifactRepository(db),
		pathway:     repository.NewPathwayRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, rdb, cfg)
	s.learner = service.NewLearnerService(repos.learner, repos.achievement)
	s.course = service.NewCourseService(repos.course, repos.level, db)
	s.progression = service.NewProgressionService(
		repos.enrollment,
		repos.progress,
		repos.level,
		repos.course,
		repos.learner,
		repos.achievement,
		db,
	)
	s.artifact = service.NewArtifactService(repos.artifact, repos.learner, s.storage)
	s.pathway = service.NewPathwayService(repos.pathway, repos.learner, repos.artifact)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		learner:    controller.NewLearnerController(s.learner),
		course:     controller.NewCourseController(s.course),
		enrollment: controller.NewEnrollmentController(s.progression),
		progress:   controller.NewProgressController(s.progression),
		artifact:   controller.NewArtifactController(s.artifact),
		pathway:    controller.NewPathwayController(s.pathway),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate || cfg.MigrateOnly {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Migration failed", zap.Error(err))
		}
		logger.Log.Info("Migration completed")
		if cfg.MigrateOnly {
			os.Exit(0)
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("fundi-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Info("Server exiting")
	logger.Log.Sync()
}

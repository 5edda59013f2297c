package app

import (
	"context"
	"istudy_lab_backend/internal/config"
	"istudy_lab_backend/internal/controller"
	"istudy_lab_backend/internal/middleware"
	"istudy_lab_backend/internal/repository"
	"istudy_lab_backend/internal/service"
	"istudy_lab_backend/pkg/configwatcher"
	"istudy_lab_backend/pkg/database"
	"istudy_lab_backend/pkg/logger"
	"istudy_lab_backend/pkg/monitoring"
	"istudy_lab_backend/pkg/security"
	"istudy_lab_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultConfigDir = "configs"

type App struct {
	Config    *config.Config
	ConfigDir string
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client

	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	ctx             context.Context
	cancel          context.CancelFunc
}

type repositories struct {
	progress     *repository.ProgressRepository
	question     *repository.QuestionRepository
	summaryCache *repository.SummaryCache
}

type services struct {
	progress *service.ProgressService
	question *service.QuestionService
}

type controllers struct {
	progress *controller.ProgressController
	quiz     *controller.QuizController
	admin    *controller.AdminQuestionController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		progress:     repository.NewProgressRepository(db),
		question:     repository.NewQuestionRepository(db),
		summaryCache: repository.NewSummaryCache(rdb, cfg.Progress.SummaryCacheTTL),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	// Validate 已经校验过时区
	loc, err := cfg.Progress.Location()
	if err != nil {
		logger.Log.Warn("Invalid progress timezone, using local time", zap.Error(err))
		loc = time.Local
	}

	return &services{
		progress: service.NewProgressService(repos.progress, repos.summaryCache, loc),
		question: service.NewQuestionService(repos.question),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		progress: controller.NewProgressController(s.progress),
		quiz:     controller.NewQuizController(s.question),
		admin:    controller.NewAdminQuestionController(s.question),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware(cfg.Tracing.ServiceName))
	}

	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(&cfg.CORS))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, &cfg.RateLimit))
	router.Use(monitoring.MetricsMiddleware())
}

// New 使用已初始化的数据库和 redis 组装路由，rdb 可以为 nil
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config:    cfg,
		ConfigDir: defaultConfigDir,
		DB:        db,
		Redis:     rdb,
		ctx:       ctx,
		cancel:    cancel,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(logger.Reload)
	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	tp, err := tracing.InitTracer(context.Background(), &cfg.Tracing)
	if err != nil {
		logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	app := New(cfg, db, rdb)
	app.tracerProvider = tp
	return app
}

func (a *App) watchConfig() {
	callbacks := make([]configwatcher.ConfigReloader, 0, len(a.configCallbacks))
	for _, cb := range a.configCallbacks {
		callbacks = append(callbacks, configwatcher.ConfigReloader(cb))
	}

	go func() {
		if err := configwatcher.WatchConfig(a.ctx, a.ConfigDir, callbacks...); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.watchConfig()

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close 停止后台任务并释放连接
func (a *App) Close(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

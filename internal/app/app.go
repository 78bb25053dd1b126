package app

import (
	"context"
	"edu_record_backend/internal/config"
	"edu_record_backend/internal/controller"
	"edu_record_backend/internal/repository"
	"edu_record_backend/internal/service"
	"edu_record_backend/pkg/configwatcher"
	"edu_record_backend/pkg/database"
	"edu_record_backend/pkg/logger"
	"edu_record_backend/pkg/monitoring"
	"edu_record_backend/pkg/security"
	"edu_record_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	user         *repository.UserRepository
	student      *repository.StudentRepository
	batch        *repository.BatchRepository
	attendance   *repository.AttendanceRepository
	mark         *repository.MarkRepository
	teacherXP    *repository.TeacherXPRepository
	assignment   *repository.AssignmentRepository
	notification *repository.NotificationRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	student      *service.StudentService
	batch        *service.BatchService
	attendance   *service.AttendanceService
	mark         *service.MarkService
	xp           *service.XPService
	assignment   *service.AssignmentService
	notification *service.NotificationService
	storage      *service.StorageService
	guard        *service.BatchWriteGuard
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	student      *controller.StudentController
	batch        *controller.BatchController
	attendance   *controller.AttendanceController
	mark         *controller.MarkController
	xp           *controller.XPController
	assignment   *controller.AssignmentController
	notification *controller.NotificationController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		student:      repository.NewStudentRepository(db),
		batch:        repository.NewBatchRepository(db),
		attendance:   repository.NewAttendanceRepository(db),
		mark:         repository.NewMarkRepository(db),
		teacherXP:    repository.NewTeacherXPRepository(db),
		assignment:   repository.NewAssignmentRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.guard = service.NewBatchWriteGuard(repos.batch)

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.student = service.NewStudentService(repos.student, repos.batch)
	s.batch = service.NewBatchService(repos.batch, repos.student, repos.user)
	s.xp = service.NewXPService(repos.teacherXP, repos.user, rdb)
	s.attendance = service.NewAttendanceService(repos.attendance, repos.student, repos.batch, s.guard, s.xp)
	s.mark = service.NewMarkService(repos.mark, repos.student, repos.batch, s.guard, s.xp)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.batch, s.guard, s.storage)
	s.notification = service.NewNotificationService(repos.notification, repos.student, repos.batch, s.guard)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		student:      controller.NewStudentController(s.student),
		batch:        controller.NewBatchController(s.batch),
		attendance:   controller.NewAttendanceController(s.attendance),
		mark:         controller.NewMarkController(s.mark),
		xp:           controller.NewXPController(s.xp),
		assignment:   controller.NewAssignmentController(s.assignment),
		notification: controller.NewNotificationController(s.notification),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式默认跳过迁移，需通过 -migrate 显式触发
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 不可用时降级运行，排行榜缓存失效
		logger.Log.Warn("Failed to initialize redis, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("edu-record", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置热更新：目前只刷新限流等可动态调整的项
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if c, ok := newCfg.(*config.Config); ok {
			app.Config.RateLimit = c.RateLimit
			app.Config.CORS = c.CORS
			logger.Log.Info("Config reloaded")
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

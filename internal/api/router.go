package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixelworks/agency-api/internal/api/handler"
	"github.com/pixelworks/agency-api/internal/api/middleware"
	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
	"github.com/pixelworks/agency-api/internal/core/service"
	"github.com/pixelworks/agency-api/internal/infrastructure/config"
	mongodb "github.com/pixelworks/agency-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pixelworks/agency-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, mailer ports.Mailer, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("agency"))

	sessions := middleware.NewJWTSessionReader(cfg.JWTSecret)
	e.Use(middleware.Gate(sessions))

	// --- Dependencies ---
	postRepo := mongodb.NewPostRepository(db)
	submissionRepo := mongodb.NewSubmissionRepository(db)
	settingRepo := mongodb.NewSettingRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	limiter := redisdb.NewRateLimiter(rdb, 5, time.Minute)

	postService := service.NewPostService(postRepo, log)
	submissionService := service.NewSubmissionService(submissionRepo, mailer, limiter, cfg.SMTP.NotifyTo, log)
	settingService := service.NewSettingService(settingRepo, log)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)

	authHandler := handler.NewAuthHandler(authService, 24*time.Hour, cfg.Env == "production")
	blogHandler := handler.NewBlogHandler(postService)
	contactHandler := handler.NewContactHandler(submissionService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	settingHandler := handler.NewSettingHandler(settingService)
	userHandler := handler.NewUserHandler(userService)
	uiHandler := handler.NewUIHandler()

	// --- Public routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/blog", blogHandler.PublicList)
	e.GET("/api/blog/:slug", blogHandler.PublicGet)
	e.POST("/api/contact", contactHandler.Submit)
	e.GET("/login", uiHandler.Login)

	// --- Admin UI shells (session-gated navigation) ---
	e.GET("/admin", uiHandler.Admin)
	e.GET("/admin/*", uiHandler.Admin)

	// --- Admin API (the gate enforces sessions; RBAC pins required roles) ---
	admin := e.Group("/api/admin")
	admin.GET("/me", authHandler.Me)

	blog := admin.Group("/blog", middleware.RBAC(domain.RoleEditor, domain.RoleAdmin))
	blog.GET("", blogHandler.List)
	blog.POST("", blogHandler.Create)
	blog.GET("/:id", blogHandler.Get)
	blog.PUT("/:id", blogHandler.Update)
	blog.DELETE("/:id", blogHandler.Delete)

	submissions := admin.Group("/submissions", middleware.RBAC(domain.RoleEditor, domain.RoleAdmin))
	submissions.GET("", submissionHandler.List)
	submissions.GET("/:id", submissionHandler.Get)
	submissions.PATCH("/:id", submissionHandler.Update)
	submissions.DELETE("/:id", submissionHandler.Delete)
	submissions.POST("/:id/reply", submissionHandler.Reply)

	settings := admin.Group("/settings", middleware.RBAC(domain.RoleAdmin))
	settings.GET("", settingHandler.List)
	settings.PUT("", settingHandler.Put)
	settings.GET("/:category/:key", settingHandler.Get)
	settings.DELETE("/:category/:key", settingHandler.Delete)

	users := admin.Group("/users", middleware.RBAC(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

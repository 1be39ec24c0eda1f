package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maintenox/maintenance-system/internal/api/handler"
	"github.com/maintenox/maintenance-system/internal/api/middleware"
	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/service"
	mongodb "github.com/maintenox/maintenance-system/internal/infrastructure/db/mongo"
	"github.com/maintenox/maintenance-system/internal/infrastructure/repository"
	"github.com/maintenox/maintenance-system/internal/infrastructure/storage"
)

// Options carries the runtime settings the router needs beyond its two
// database handles.
type Options struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(rdb *redis.Client, mdb *mongo.Database, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("maintenox"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Dependencies ---
	store := storage.NewRedisStore(rdb)

	userRepo := repository.NewUserRepository(store)
	jobRepo := repository.NewJobRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)
	sessionStore := repository.NewSessionStore(store)
	activityRepo := mongodb.NewActivityRepository(mdb)

	authService := service.NewAuthService(userRepo, sessionStore, activityRepo,
		opts.JWTSecret, opts.TokenTTL, opts.BcryptCost, opts.Logger)
	jobService := service.NewJobService(jobRepo, userRepo, activityRepo, opts.Logger)
	notificationService := service.NewNotificationService(notificationRepo, activityRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(jobService)
	activityHandler := handler.NewActivityHandler(activityRepo)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb, mdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	authed := e.Group("", middleware.Auth(opts.JWTSecret, authService))

	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)
	authed.PUT("/auth/profile", authHandler.Profile)

	v1 := authed.Group("/v1")

	v1.GET("/jobs", jobHandler.List)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.PATCH("/jobs/:id/status", jobHandler.UpdateStatus)

	v1.GET("/notifications", notificationHandler.List)
	v1.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	v1.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	v1.DELETE("/notifications/:id", notificationHandler.Delete)

	v1.GET("/dashboard/me", dashboardHandler.Me)

	// --- Admin-only routes ---
	admin := v1.Group("", middleware.RoleGate(domain.RoleAdmin))

	admin.POST("/jobs", jobHandler.Create)
	admin.PUT("/jobs/:id", jobHandler.Update)
	admin.DELETE("/jobs/:id", jobHandler.Delete)

	admin.GET("/users", userHandler.List)
	admin.PUT("/users/:id", userHandler.Update)
	admin.PATCH("/users/:id/role", userHandler.UpdateRole)
	admin.DELETE("/users/:id", userHandler.Delete)

	admin.POST("/notifications", notificationHandler.Broadcast)

	admin.GET("/dashboard/admin", dashboardHandler.Admin)
	admin.GET("/activity", activityHandler.List)

	return e
}

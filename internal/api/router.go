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

	"github.com/tastebook/admin-api/internal/api/handler"
	"github.com/tastebook/admin-api/internal/api/middleware"
	"github.com/tastebook/admin-api/internal/core/domain"
	"github.com/tastebook/admin-api/internal/core/service"
	mongodb "github.com/tastebook/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tastebook/admin-api/internal/infrastructure/db/redis"
	"github.com/tastebook/admin-api/internal/infrastructure/http/handlers"
	"github.com/tastebook/admin-api/internal/infrastructure/storage"
	"github.com/tastebook/admin-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, pictures handler.PictureStore) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsDevelopment())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	recipeRepo := mongodb.NewRecipeRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	suspensions := redisdb.NewSuspensionList(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	accountService := service.NewAccountService(userRepo, suspensions, log)
	moderationService := service.NewModerationService(recipeRepo, blogRepo, commentRepo, log)
	activityService := service.NewActivityService(recipeRepo, commentRepo, userRepo, log)
	dashboardService := service.NewDashboardService(recipeRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(accountService)
	recipeHandler := handler.NewRecipeHandler(moderationService)
	blogHandler := handler.NewBlogHandler(moderationService, pictures)
	commentHandler := handler.NewCommentHandler(moderationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, activityService)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/api/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/api/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static(storage.PublicPrefix, cfg.UploadsDir)

	// --- Admin routes ---
	admin := e.Group("/api/admin",
		middleware.Auth(cfg.JWTSecret),
		middleware.SuspensionGuard(suspensions, log),
		middleware.RBAC(domain.RoleAdmin),
	)

	admin.GET("/stats", dashboardHandler.Stats)
	admin.GET("/recent-activity", dashboardHandler.RecentActivity)

	admin.GET("/recipes", recipeHandler.List)
	admin.GET("/recipes/featured", recipeHandler.Featured)
	admin.PUT("/recipes/:id/status", recipeHandler.SetStatus)
	admin.PUT("/recipes/:id/approve", recipeHandler.Approve)
	admin.PUT("/recipes/:id/reject", recipeHandler.Reject)
	admin.PUT("/recipes/:id/feature", recipeHandler.Feature)
	admin.PUT("/recipes/:id/unfeature", recipeHandler.Unfeature)
	admin.DELETE("/recipes/:id", recipeHandler.Delete)

	admin.GET("/blogs", blogHandler.List)
	admin.GET("/blogs/:id", blogHandler.Get)
	admin.POST("/blogs", blogHandler.Create)
	admin.PUT("/blogs/:id", blogHandler.Update)
	admin.DELETE("/blogs/:id", blogHandler.Delete)

	admin.GET("/comments", commentHandler.List)

	admin.GET("/users", userHandler.List)
	admin.PUT("/users/:id/role", userHandler.SetRole)
	admin.PUT("/users/:id/suspend", userHandler.Suspend)
	admin.DELETE("/users/:id", userHandler.Delete)

	admin.GET("/profile", userHandler.Profile)
	admin.PUT("/profile", userHandler.UpdateProfile)
	admin.PUT("/profile/password", userHandler.ChangePassword)

	return e
}

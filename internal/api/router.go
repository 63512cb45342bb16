package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/katyregal/salon-api/internal/api/handler"
	"github.com/katyregal/salon-api/internal/api/middleware"
	"github.com/katyregal/salon-api/internal/core/domain"
	"github.com/katyregal/salon-api/internal/core/ports"
	"github.com/katyregal/salon-api/internal/core/service"
	mongodb "github.com/katyregal/salon-api/internal/infrastructure/db/mongo"
	redisdb "github.com/katyregal/salon-api/internal/infrastructure/db/redis"
	"github.com/katyregal/salon-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, activity ports.ActivitySink, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("salon"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	categoryCache := redisdb.NewCategoryCache(rdb)

	authService := service.NewAuthService(authRepo, activity, cfg.JWTSecret, cfg.JWTTTL, log)
	catalogService := service.NewCatalogService(catalogRepo, categoryCache, log)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	authenticated := middleware.Authenticate(cfg.JWTSecret, authRepo)
	adminOnly := middleware.Authorize(domain.RoleAdmin)

	// --- Liveness / observability ---
	e.GET("/", handler.NewRootHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authenticated)
	auth.POST("/password", authHandler.ChangePassword, authenticated)

	// --- Catalog routes ---
	services := e.Group("/api/services")
	services.GET("", catalogHandler.List)
	services.GET("/categories", catalogHandler.Categories)
	services.GET("/:id", catalogHandler.Get)
	services.POST("", catalogHandler.Create, authenticated, adminOnly)
	services.PUT("/:id", catalogHandler.Update, authenticated, adminOnly)
	services.DELETE("/:id", catalogHandler.Delete, authenticated, adminOnly)

	return e
}

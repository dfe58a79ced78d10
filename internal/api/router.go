package api

import (
	"net/http"
	"time"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/caltrack/caltrack/internal/api/handler"
	"github.com/caltrack/caltrack/internal/api/middleware"
	"github.com/caltrack/caltrack/internal/core/ports"
	"github.com/caltrack/caltrack/internal/core/service"
	"github.com/caltrack/caltrack/internal/infrastructure/config"
	mongodb "github.com/caltrack/caltrack/internal/infrastructure/db/mongo"
	redisdb "github.com/caltrack/caltrack/internal/infrastructure/db/redis"
	"github.com/caltrack/caltrack/internal/provider"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("caltrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	entryRepo := mongodb.NewFoodLogRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.TokenTTL)
	profileService := service.NewProfileService(userRepo, entryRepo, denylist, log)
	diaryService := service.NewDiaryService(entryRepo, userRepo, log)

	providers := []ports.FoodProvider{
		provider.NewLocalTable(cfg.Search.LocalTableEnabled),
		provider.NewNutritionix(cfg.Search.NutritionixAppID, cfg.Search.NutritionixAppKey),
		provider.NewEdamam(cfg.Search.EdamamAppID, cfg.Search.EdamamAppKey),
	}
	off := provider.NewOpenFoodFacts(cfg.Search.FallbackEnabled)
	var fallback ports.FoodProvider
	var barcode ports.BarcodeLookup
	if cfg.Search.FallbackEnabled {
		fallback = off
		barcode = off
	}
	searchService := service.NewSearchService(providers, fallback, barcode, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	calculatorHandler := handler.NewCalculatorHandler()
	diaryHandler := handler.NewDiaryHandler(diaryService)
	foodHandler := handler.NewFoodHandler(searchService)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb, append(providers, off))

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/calculator", calculatorHandler.Calculate)

	// --- Authenticated routes ---
	auth := middleware.Auth(cfg.JWTSecret, denylist, log)

	v1.POST("/auth/logout", authHandler.Logout, auth)

	profile := v1.Group("/profile", auth)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)
	profile.DELETE("", profileHandler.Delete)
	profile.POST("/stats", profileHandler.SaveStats)

	diary := v1.Group("/diary", auth)
	diary.POST("", diaryHandler.Log)
	diary.GET("", diaryHandler.Day)
	diary.DELETE("/:id", diaryHandler.Delete)

	// Search fans out to third-party APIs, so it carries a per-user limiter.
	foods := v1.Group("/foods", auth)
	foods.Use(echomiddleware.RateLimiterWithConfig(searchRateLimiter()))
	foods.GET("/search", foodHandler.Search)
	foods.GET("/barcode/:code", foodHandler.Barcode)

	return e
}

// searchRateLimiter allows bursts of 10 and a steady 5 req/s per user.
// Unauthenticated callers never reach the limiter; the auth middleware in
// front of the foods group rejects them first.
func searchRateLimiter() echomiddleware.RateLimiterConfig {
	return echomiddleware.RateLimiterConfig{
		Skipper: echomiddleware.DefaultSkipper,
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(
			echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(5),
				Burst:     10,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if id, ok := c.Get("user_id").(string); ok && id != "" {
				return id, nil
			}
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
		},
	}
}

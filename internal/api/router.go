package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pressroom/content-system/docs"
	"github.com/pressroom/content-system/internal/api/handler"
	"github.com/pressroom/content-system/internal/api/middleware"
	"github.com/pressroom/content-system/internal/core/domain"
	"github.com/pressroom/content-system/internal/core/service"
	"github.com/pressroom/content-system/internal/infrastructure/config"
	mongodb "github.com/pressroom/content-system/internal/infrastructure/db/mongo"
	redisdb "github.com/pressroom/content-system/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("content"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxFailures, cfg.Login.Lockout)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, limiter, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	auth := middleware.Auth(tokens)

	// --- Public routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Protected routes: one declared action each ---
	e.POST("/posts", postHandler.Create, auth, middleware.RequireAction(domain.ActionCreatePost))
	e.GET("/posts", postHandler.List, auth, middleware.RequireAction(domain.ActionListPosts))
	e.GET("/posts/unvalidated", postHandler.ListPending, auth, middleware.RequireAction(domain.ActionListPending))
	e.POST("/posts/validate/:id", postHandler.Moderate, auth, middleware.RequireAction(domain.ActionModeratePost))
	// Deletion authorizes in the service: owner or delete permission.
	e.DELETE("/posts/:id", postHandler.Delete, auth)

	// --- Operational surfaces ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kosaboard/board-api/internal/api/handler"
	"github.com/kosaboard/board-api/internal/api/middleware"
	"github.com/kosaboard/board-api/internal/core/domain"
	"github.com/kosaboard/board-api/internal/core/service"
	"github.com/kosaboard/board-api/internal/infrastructure/config"
	mongodb "github.com/kosaboard/board-api/internal/infrastructure/db/mongo"
	redisdb "github.com/kosaboard/board-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("board"))

	// --- Dependencies ---
	memberRepo := mongodb.NewMemberRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	feedCache := redisdb.NewFeedCache(rdb, cfg.Redis.FeedCacheTTL)

	memberService := service.NewMemberService(memberRepo, service.NewPasswordHasher(), log)
	authService := service.NewAuthService(memberService, cfg.JWTSecret, cfg.TokenTTL, log)
	postService := service.NewPostService(postRepo, memberRepo, feedCache, log)

	memberHandler := handler.NewMemberHandler(memberService)
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	adminHandler := handler.NewAdminHandler()

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Members ---
	e.POST("/api/members", memberHandler.Register)
	e.GET("/api/members/me", memberHandler.Me, authRequired)
	e.PUT("/api/members/me", memberHandler.UpdateMe, authRequired)
	e.GET("/api/members/:id", memberHandler.GetByID, authRequired, adminOnly)

	// --- Posts ---
	e.GET("/api/posts", postHandler.List)
	e.GET("/api/posts/:id", postHandler.Get, authRequired)
	e.POST("/api/posts", postHandler.Create, authRequired)

	// --- Admin ---
	e.GET("/admin", adminHandler.Info, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

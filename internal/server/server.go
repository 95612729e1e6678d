// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"kindling/internal/cache"
	"kindling/internal/config"
	"kindling/internal/database"
	"kindling/internal/middleware"
	"kindling/internal/repository"
	"kindling/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	userService    *service.UserService
	commentService *service.CommentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	s := NewServerWithDeps(cfg, db, cache.GetClient())
	// Registers collectors in the default registry, so only the production
	// constructor wires it; NewServerWithDeps callers may build many servers.
	s.promMiddleware = fiberprometheus.New("kindling-api")
	return s, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		userService:    service.NewUserService(userRepo),
		commentService: service.NewCommentService(commentRepo, postRepo, userRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// OpenTelemetry span per request (no-op tracer when tracing is disabled)
	app.Use(middleware.TracingMiddleware())

	// Context middleware to propagate request ID and trace ID to the logger
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
		app.Use(s.promMiddleware.Middleware)
	}

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// The API is consumed cross-origin by the board client; any origin,
	// method and header is accepted.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Kindling API is up")
	})
	app.Get("/healthz", s.LivenessCheck)
	app.Get("/readyz", s.ReadinessCheck)

	api := app.Group("/api")

	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.CreatePost)
	// Specific /:id/:resource routes before the generic /:id route
	posts.Post("/:id/comments", s.CreateComment)
	posts.Put("/:id/upvote", s.UpvotePost)
	posts.Put("/:id/downvote", s.DownvotePost)
	posts.Put("/:postId/comments/:commentId/upvote", s.UpvoteComment)
	posts.Put("/:postId/comments/:commentId/downvote", s.DownvoteComment)
	posts.Get("/:id", s.GetPost)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The cache is optional; the service is fully functional without it.
		redisStatus = "disabled"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	cache.Close()
	if sqlDB, err := s.db.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}

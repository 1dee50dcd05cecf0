package server

import (
	"context"
	"log"
	"strings"
	"time"

	"skillswap/internal/client"
	"skillswap/internal/config"
	"skillswap/internal/middleware"
	"skillswap/internal/models"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	api            *client.Client
	posts          *client.PostsClient
	comments       *client.CommentsClient
	ratings        *client.RatingsClient
	learningPlans  *client.LearningPlansClient
	session        *client.SessionClient
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
	}

	apiClient := client.New(client.Options{
		BaseURL: cfg.APIURL,
		Timeout: cfg.RequestTimeout(),
	})

	return NewServerWithDeps(cfg, apiClient, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the upstream client
// and Redis.
func NewServerWithDeps(cfg *config.Config, apiClient *client.Client, redisClient *redis.Client) (*Server, error) {
	prom := middleware.InitMetrics("skillswap-gateway")

	return &Server{
		config:         cfg,
		redis:          redisClient,
		promMiddleware: prom,
		api:            apiClient,
		posts:          client.NewPostsClient(apiClient),
		comments:       client.NewCommentsClient(apiClient),
		ratings:        client.NewRatingsClient(apiClient),
		learningPlans:  client.NewLearningPlansClient(apiClient),
		session:        client.NewSessionClient(apiClient),
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for correlation with upstream calls
	app.Use(requestid.New())

	// Distributed tracing before context propagation so trace IDs land in locals
	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and Trace ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(s.config.Origins(), ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Sign-in flow
	app.Get("/login", s.LoginPage)
	app.Get("/login/google", s.GoogleLogin)
	app.Get("/session", s.SessionInfo)

	// Post routes
	posts := app.Group("/posts")
	posts.Get("/", s.ListPosts)
	posts.Post("/", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_post"), s.CreatePost)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Get("/:id/comments", s.ListComments)
	posts.Post("/:id/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
	posts.Get("/:id/ratings", s.ListRatings)
	posts.Post("/:id/ratings", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_rating"), s.CreateRating)
	// Generic /:id routes (for item detail, update, delete)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Comment and rating item routes
	app.Put("/comments/:commentId", s.UpdateComment)
	app.Delete("/comments/:commentId", s.DeleteComment)
	app.Put("/ratings/:ratingId", s.UpdateRating)
	app.Delete("/ratings/:ratingId", s.DeleteRating)

	// Learning plan routes; mutations are admin-only
	plans := app.Group("/learning-plans")
	plans.Get("/", s.ListLearningPlans)
	plans.Get("/:id", s.GetLearningPlan)
	plans.Post("/", s.AdminRequired(), s.CreateLearningPlan)
	plans.Put("/:id", s.AdminRequired(), s.UpdateLearningPlan)
	plans.Delete("/:id", s.AdminRequired(), s.DeleteLearningPlan)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The upstream API counts as
// reachable when the session probe answers at all; an unauthenticated or
// error-status answer still proves connectivity.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	upstreamStatus := "healthy"
	if _, err := s.session.Get(ctx); err != nil && !client.IsAuthRequired(err) {
		if _, ok := client.AsAPIError(err); !ok {
			upstreamStatus = "unhealthy"
		}
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if upstreamStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"upstream": upstreamStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AdminRequired returns middleware that rejects non-admin callers with 403.
// The role comes from the backend's session endpoint, never from the caller.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := s.requestContext(c)

		sess, err := s.session.Get(ctx)
		if err != nil {
			return s.respondClientError(c, err)
		}
		if !sess.Authenticated || !sess.IsAdmin() {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Admin access required"))
		}

		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "SkillSwap Gateway",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewUpstreamError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

// Package server contains the HTTP handlers for the application's API
// endpoints.
package server

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"fitflow/internal/bootstrap"
	"fitflow/internal/cache"
	"fitflow/internal/coach"
	"fitflow/internal/config"
	"fitflow/internal/mail"
	"fitflow/internal/middleware"
	"fitflow/internal/mlclient"
	"fitflow/internal/models"
	"fitflow/internal/repository"
	"fitflow/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	tokenIssuer   = "fitflow-api"
	tokenAudience = "fitflow-client"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo     repository.UserRepository
	workoutRepo  repository.WorkoutRepository
	mealRepo     repository.MealRepository
	goalRepo     repository.GoalRepository
	progressRepo repository.ProgressRepository
	triviaRepo   repository.TriviaRepository
	calcRepo     repository.CalculatorRepository

	mailer mail.Mailer

	userService       *service.UserService
	workoutService    *service.WorkoutService
	mealService       *service.MealService
	goalService       *service.GoalService
	progressService   *service.ProgressService
	triviaService     *service.TriviaService
	calculatorService *service.CalculatorService
	analyticsService  *service.AnalyticsService
	coachService      *service.CoachService
}

// NewServer creates a server instance with all dependencies, connecting
// to the database and Redis from config and seeding the trivia bank.
func NewServer(cfg *config.Config) (*Server, error) {
	db, redisClient, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedTrivia: true})
	if err != nil {
		return nil, err
	}

	var mailer mail.Mailer = &mail.LogMailer{}
	if cfg.SMTPConfigured() {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	var analyzer mlclient.Analyzer
	if cfg.MLServiceURL != "" {
		analyzer = mlclient.NewHTTPAnalyzer(cfg.MLServiceURL)
	}

	var llm coach.LLM
	if cfg.MistralAPIKey != "" {
		llm = coach.NewMistralClient(cfg.MistralAPIKey, "")
	}

	return newServer(cfg, db, redisClient, mailer, analyzer, llm), nil
}

// NewServerWithDeps creates a Server using already-initialized
// dependencies. Use this in tests or when a bootstrap layer establishes
// DB/Redis and performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	return newServer(cfg, db, redisClient, &mail.LogMailer{}, nil, nil)
}

func newServer(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	mailer mail.Mailer,
	analyzer mlclient.Analyzer,
	llm coach.LLM,
) *Server {
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	mealRepo := repository.NewMealRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	triviaRepo := repository.NewTriviaRepository(db)
	calcRepo := repository.NewCalculatorRepository(db)

	prom := middleware.InitMetrics("fitflow-api")

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		workoutRepo:    workoutRepo,
		mealRepo:       mealRepo,
		goalRepo:       goalRepo,
		progressRepo:   progressRepo,
		triviaRepo:     triviaRepo,
		calcRepo:       calcRepo,
		mailer:         mailer,
	}

	s.userService = service.NewUserService(userRepo)
	s.workoutService = service.NewWorkoutService(workoutRepo)
	s.mealService = service.NewMealService(mealRepo)
	s.goalService = service.NewGoalService(goalRepo)
	s.progressService = service.NewProgressService(progressRepo, userRepo, analyzer, cfg.UploadDir)
	s.triviaService = service.NewTriviaService(triviaRepo)
	s.calculatorService = service.NewCalculatorService(calcRepo, userRepo)
	s.analyticsService = service.NewAnalyticsService(workoutRepo, mealRepo, goalRepo, calcRepo, userRepo)
	s.coachService = service.NewCoachService(llm)

	return s
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Request spans (exporter configured at startup)
	app.Use(middleware.TracingMiddleware())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. the
	// limiter) so browser clients still receive CORS headers on errors.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; CORS handles them.
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

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Stored progress photos and thumbnails
	uploadDir := s.config.UploadDir
	if uploadDir == "" {
		uploadDir = service.DefaultPhotoUploadDir
	}
	app.Static("/media/progress", uploadDir)
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "FitFlow Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.Logout)
	auth.Post("/forgot-password", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "forgot_password"), s.ForgotPassword)
	auth.Post("/reset-password/:token", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "reset_password"), s.ResetPassword)

	// Everything below requires a valid token.
	protected := api.Group("", s.AuthRequired())

	// Workout routes
	workouts := protected.Group("/workouts")
	workouts.Get("/", s.GetWorkouts)
	workouts.Post("/", s.CreateWorkout)
	workouts.Get("/:id", s.GetWorkout)
	workouts.Put("/:id", s.UpdateWorkout)
	workouts.Delete("/:id", s.DeleteWorkout)

	// Nutrition routes. Specific /today and /date routes before /meals/:id.
	nutrition := protected.Group("/nutrition")
	nutrition.Get("/today", s.GetNutritionToday)
	nutrition.Get("/date/:date", s.GetNutritionByDate)
	nutrition.Get("/meals", s.GetMeals)
	nutrition.Post("/meals", s.CreateMeal)
	nutrition.Get("/meals/:id", s.GetMeal)
	nutrition.Put("/meals/:id", s.UpdateMeal)
	nutrition.Delete("/meals/:id", s.DeleteMeal)

	// Goal routes
	goals := protected.Group("/goals")
	goals.Get("/", s.GetGoals)
	goals.Post("/", s.CreateGoal)
	goals.Get("/:id", s.GetGoal)
	goals.Put("/:id", s.UpdateGoal)
	goals.Delete("/:id", s.DeleteGoal)

	// Calculator routes
	calculator := protected.Group("/calculator")
	calculator.Post("/calculate", s.Calculate)
	calculator.Get("/history", s.GetCalculatorHistory)

	// Progress photo routes
	progress := protected.Group("/progress")
	progress.Post("/upload", s.UploadProgressPhoto)
	progress.Get("/photos", s.GetProgressPhotos)
	progress.Get("/photos/:id", s.GetProgressPhoto)
	progress.Delete("/photos/:id", s.DeleteProgressPhoto)

	// Trivia routes
	trivia := protected.Group("/trivia")
	trivia.Get("/question", s.GetTriviaQuestion)
	trivia.Post("/answer", s.SubmitTriviaAnswer)
	trivia.Get("/stats", s.GetTriviaStats)

	// Analytics routes
	analytics := protected.Group("/analytics")
	analytics.Get("/workouts", s.GetWorkoutStats)
	analytics.Get("/nutrition", s.GetNutritionStats)
	analytics.Get("/overview", s.GetAnalyticsOverview)

	// Dashboard
	protected.Get("/dashboard/stats", s.GetDashboardStats)

	// AI coach
	protected.Post("/ai-coach/chat", middleware.RateLimit(
		s.redis, 15, time.Minute, "coach_chat"), s.CoachChat)

	// User profile routes
	user := protected.Group("/user")
	user.Get("/profile", s.GetProfile)
	user.Put("/profile", s.UpdateProfile)
	user.Get("/stats", s.GetUserStats)
	user.Put("/change-password", s.ChangePassword)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
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

	// Redis is optional; the app degrades to uncached operation.
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

// AuthRequired returns the authentication middleware.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			tokenString = c.Cookies("token")
		}
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}
		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		// Check JTI for revocation (logout blacklists the token).
		if jti, exists := claims["jti"].(string); exists && jti != "" {
			if cache.Blacklisted(c.Context(), jti) {
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("Token has been revoked"))
			}
		}

		c.Locals("userID", uint(userID))
		// Sync to UserContext for logging and downstream services.
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, uint(userID))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// Start starts the server.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "FitFlow API",
		BodyLimit: service.MaxPhotoUploadBytes + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
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

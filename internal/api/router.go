package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pgedit/studio-api/docs"
	"github.com/pgedit/studio-api/internal/api/handler"
	"github.com/pgedit/studio-api/internal/api/middleware"
	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
	"github.com/pgedit/studio-api/internal/core/service"
	"github.com/pgedit/studio-api/internal/infrastructure/config"
	mongodb "github.com/pgedit/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pgedit/studio-api/internal/infrastructure/db/redis"
)

// Options carries the externally constructed dependencies the router wires
// into handlers. The audit publisher and outbound gateways are owned by
// main, which controls their lifecycles.
type Options struct {
	Mongo           *mongo.Database
	Redis           *redis.Client
	Config          *config.Config
	Audit           ports.CreditEventPublisher
	Generator       ports.ImageGenerator
	ConfigPublisher ports.ConfigPublisher
	Logger          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Dependencies ---
	tokenTTL := time.Duration(opts.Config.TokenTTLHrs) * time.Hour

	userRepo := mongodb.NewUserRepository(opts.Mongo)
	paymentRepo := mongodb.NewPaymentRepository(opts.Mongo)
	eventRepo := mongodb.NewCreditEventRepository(opts.Mongo)
	sessions := redisdb.NewSessionStore(opts.Redis, tokenTTL)

	authService := service.NewAuthService(userRepo, sessions, opts.Audit, opts.Config.JWTSecret, tokenTTL, opts.Logger)
	creditService := service.NewCreditService(userRepo, eventRepo, opts.Audit, opts.Logger)
	paymentService := service.NewPaymentService(paymentRepo, userRepo, opts.Audit, opts.Logger)
	generationService := service.NewGenerationService(opts.Generator, creditService, opts.Logger)
	environmentService := service.NewEnvironmentService(opts.ConfigPublisher, opts.Logger)

	authHandler := handler.NewAuthHandler(authService, creditService)
	generationHandler := handler.NewGenerationHandler(generationService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	adminHandler := handler.NewAdminHandler(creditService, paymentService)
	environmentHandler := handler.NewEnvironmentHandler(environmentService)

	authRequired := middleware.Auth(opts.Config.JWTSecret, sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Generation and purchase routes ---
	v1 := e.Group("/v1")
	v1.GET("/plans", paymentHandler.Plans)
	v1.POST("/images/generate", generationHandler.Generate, authRequired)
	v1.POST("/payments", paymentHandler.Submit, authRequired)
	v1.GET("/payments", paymentHandler.ListMine, authRequired)

	// --- Admin back-office ---
	admin := v1.Group("/admin", authRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/credits", adminHandler.UpdateCredits)
	admin.GET("/users/:id/events", adminHandler.CreditHistory)
	admin.GET("/payments", adminHandler.ListPayments)
	admin.POST("/payments/:id/approve", adminHandler.ApprovePayment)
	admin.POST("/payments/:id/reject", adminHandler.RejectPayment)
	admin.POST("/env/import", environmentHandler.Import)
	admin.POST("/env/save", environmentHandler.Save)

	// --- Health probes, metrics, docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moneyvault/vault-api/internal/api/handler"
	"github.com/moneyvault/vault-api/internal/core/ports"
	"github.com/moneyvault/vault-api/internal/core/service"
)

// Dependencies carries everything the router needs. The repositories are
// always non-nil (degraded-mode implementations stand in when the store
// connect failed); Mongo, Redis, and Dedup may be nil.
type Dependencies struct {
	Users  ports.AuthRepository
	Ledger ports.LedgerRepository
	Goals  ports.GoalRepository
	Dedup  service.DedupChecker

	Mongo *mongo.Database
	Redis *redis.Client

	// Metrics overrides the Prometheus registry for the HTTP middleware
	// and the /metrics endpoint. Nil uses the default registry.
	Metrics *prometheus.Registry

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "vault",
		Registerer: registerer,
	}))

	// --- Services and handlers ---
	authService := service.NewAuthService(deps.Users, deps.Log)
	ledgerService := service.NewLedgerService(deps.Ledger, deps.Dedup, deps.Log)
	goalService := service.NewGoalService(deps.Goals, deps.Log)

	indexHandler := handler.NewIndexHandler()
	authHandler := handler.NewAuthHandler(authService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	goalHandler := handler.NewGoalHandler(goalService)

	// --- Client page ---
	e.GET("/", indexHandler.Serve)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Ledger routes ---
	e.POST("/transaction", ledgerHandler.Upload)
	e.GET("/get_balance", ledgerHandler.Balance)
	e.GET("/analytics", ledgerHandler.Analytics)
	e.GET("/get_ledger", ledgerHandler.Ledger)

	// --- Goal routes ---
	e.POST("/save_goal", goalHandler.Save)
	e.GET("/get_goals", goalHandler.List)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	return e
}

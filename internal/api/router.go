package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fiscal/tax-management-system/internal/api/handler"
	"github.com/fiscal/tax-management-system/internal/api/middleware"
	"github.com/fiscal/tax-management-system/internal/core/domain"
	"github.com/fiscal/tax-management-system/internal/core/service"
	"github.com/fiscal/tax-management-system/internal/infrastructure/db/postgres"
	redisdb "github.com/fiscal/tax-management-system/internal/infrastructure/db/redis"
	"github.com/fiscal/tax-management-system/internal/infrastructure/http/handlers"
	"github.com/fiscal/tax-management-system/internal/pkg/config"
)

// Deps carries the connected infrastructure the router wires together.
type Deps struct {
	Pool  *pgxpool.Pool
	Redis *redis.Client
	Cfg   *config.Config
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taxsystem"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(d.Pool)
	taxTypeRepo := postgres.NewTaxTypeRepository(d.Pool)
	taxTypeCache := redisdb.NewTaxTypeCache(d.Redis)

	authService := service.NewAuthService(userRepo, d.Cfg.JWTSecret, d.Cfg.TokenTTL, d.Log)
	userService := service.NewUserService(userRepo, d.Log)
	taxTypeService := service.NewTaxTypeService(taxTypeRepo, taxTypeCache, d.Log)
	calculationService := service.NewTaxCalculationService(taxTypeService, d.Log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taxTypeHandler := handler.NewTaxTypeHandler(taxTypeService)
	calculationHandler := handler.NewCalculationHandler(calculationService)

	auth := middleware.Auth(d.Cfg.JWTSecret)
	admin := middleware.RBAC(domain.RoleAdmin.Authority())

	// --- Auth routes (no token required) ---
	e.POST("/user/register", authHandler.Register)
	e.POST("/user/login", authHandler.Login)

	// --- Tax type routes ---
	tipos := e.Group("/tipos", auth)
	tipos.GET("", taxTypeHandler.List)
	tipos.GET("/:id", taxTypeHandler.Get)
	tipos.POST("", taxTypeHandler.Create, admin)
	tipos.DELETE("/:id", taxTypeHandler.Delete, admin)

	// --- Calculation route ---
	e.POST("/calculo", calculationHandler.Calculate, auth, admin)

	// --- User administration routes ---
	users := e.Group("/users", auth, admin)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Pool, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

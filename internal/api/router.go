package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/manodeobra/professionals-api/docs"
	"github.com/manodeobra/professionals-api/internal/api/handler"
	"github.com/manodeobra/professionals-api/internal/api/middleware"
	"github.com/manodeobra/professionals-api/internal/core/ports"
	infrahttp "github.com/manodeobra/professionals-api/internal/infrastructure/http"
	"github.com/manodeobra/professionals-api/internal/infrastructure/http/handlers"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	AuthService ports.AuthService
	UserService ports.ProfessionalUserService
	Logger      zerolog.Logger

	CORSOrigins []string
	PhoneRegion string

	// HealthChecks back the readiness check.
	HealthChecks map[string]handlers.CheckFunc
	// Registerer and Gatherer enable request metrics and /metrics. Leave
	// both nil to run without Prometheus.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	// Swagger mounts the Swagger UI at /swagger/*.
	Swagger bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator(d.PhoneRegion)
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  corsOrigins(d.CORSOrigins),
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.HeaderAuthToken},
		ExposeHeaders: []string{middleware.HeaderAuthToken},
	}))
	if d.Registerer != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "professionals_http",
			Registerer: d.Registerer,
		}))
	}

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	userHandler := handler.NewProfessionalUserHandler(d.UserService)
	authMiddleware := middleware.Auth(d.AuthService, d.Logger)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// --- Professional user routes ---
	users := e.Group("/api/professional_user")
	users.GET("/", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.GET("/category/:category_id", userHandler.ListByCategory)
	users.PUT("/", userHandler.Edit, authMiddleware)
	users.DELETE("/disable", userHandler.Disable, authMiddleware)
	users.DELETE("/", userHandler.Delete, authMiddleware)

	// --- Ops endpoints and docs (no auth required) ---
	infrahttp.RegisterOps(e, infrahttp.Ops{
		Checks:   d.HealthChecks,
		Gatherer: d.Gatherer,
	})
	if d.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/manodeobra/professionals-api/internal/infrastructure/http/handlers"
)

// Ops holds the operational endpoints' dependencies.
type Ops struct {
	// Checks are run by /health/ready, keyed by dependency name.
	Checks map[string]handlers.CheckFunc
	// Gatherer backs /metrics. Nil skips the endpoint.
	Gatherer prometheus.Gatherer
}

// RegisterOps mounts the health and metrics endpoints on e. None of them
// require authentication.
func RegisterOps(e *echo.Echo, p Ops) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(p.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?

	if p.Gatherer != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: p.Gatherer,
		}))
	}
}

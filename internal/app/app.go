package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budgetops/fiscalpulse/config"
	"github.com/budgetops/fiscalpulse/internal/api"
	"github.com/budgetops/fiscalpulse/internal/calendar"
	"github.com/budgetops/fiscalpulse/internal/fiscal"
	"github.com/budgetops/fiscalpulse/internal/holiday"
	"github.com/budgetops/fiscalpulse/internal/middleware"
	"github.com/budgetops/fiscalpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Applies rate-limit settings from configuration.
//   - Initializes the service layer over the fiscal and holiday engines.
//   - Creates the HTTP handler layer and configures the router.
//   - Registers health and readiness probes.
//
// The engines hold no external resources, so the cleanup function is a no-op
// kept for symmetry with the server shutdown path.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	middleware.SetRateLimit(cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)

	// Service layer (business logic over the pure engines)
	svc := service.NewFiscalService()

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Router with routes and middlewares
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(engineCheck)
	healthHandler.Register(router)

	cleanup := func() {}

	return router, cleanup, nil
}

// engineCheck resolves today's fiscal year and its holiday set; a failure
// here means the service cannot answer any query.
func engineCheck() error {
	y, err := fiscal.New(calendar.Truncate(time.Now().UTC()))
	if err != nil {
		return err
	}
	_, err = holiday.NewEngine(y.FiscalYear())
	return err
}

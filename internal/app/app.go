package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockprice/config"
	"github.com/guttosm/stockprice/internal/api"
	"github.com/guttosm/stockprice/internal/service"
)

// upstreamOpener is an indirection for unit testing; defaults to InitUpstream.
var upstreamOpener = InitUpstream

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the RapidAPI client using InitUpstream().
//   - Wraps it so readiness reports a key rejected by RapidAPI.
//   - Initializes the price service (filter → sort → paginate pipeline).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function that closes idle upstream connections.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	client, err := upstreamOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize rapidapi client: %w", err)
	}

	// Track credential rejections for the readiness probe
	probe := newCredentialProbe(client)

	// Initialize service layer (query pipeline)
	svc := service.NewPriceService(probe)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.RateLimitPerMinute)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(probe.Ready)
	healthHandler.Register(router)

	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}

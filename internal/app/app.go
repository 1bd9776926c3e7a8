package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stocklens/stocklens/config"
	"github.com/stocklens/stocklens/internal/api"
	"github.com/stocklens/stocklens/internal/narrative"
	"github.com/stocklens/stocklens/internal/provider"
	"github.com/stocklens/stocklens/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the price-provider adapter selected by configuration.
//   - Builds the narrative generator when a credential is configured.
//   - Creates the pipeline service and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	prov, err := buildProvider(cfg.Provider)
	if err != nil {
		return nil, nil, err
	}

	// Narrative stage is opt-in: no credential means it is skipped and
	// responses carry ai_summary: null.
	var gen narrative.Generator
	if cfg.OpenAI.Enabled() {
		gen = narrative.NewOpenAIGenerator(cfg.OpenAI.APIKey)
	}

	svc := service.NewAnalyzeService(prov, gen, cfg.Response.StatsOnly)

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return prov.Ping(ctx)
	})
	healthHandler.Register(router)

	// Nothing holds cross-request state; cleanup is a no-op kept for the
	// shutdown contract.
	cleanup := func() {}

	return router, cleanup, nil
}

// buildProvider selects the concrete adapter from configuration. The
// pipeline itself never branches on the vendor.
func buildProvider(cfg config.ProviderConfig) (provider.Provider, error) {
	switch cfg.Name {
	case "fmp":
		return provider.NewFMPClient(cfg.FMPAPIKey, cfg.Timeout), nil
	case "yahoo":
		return provider.NewYahooClient(cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Name)
	}
}

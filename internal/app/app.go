package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/usdtpulse/config"
	"github.com/guttosm/usdtpulse/internal/api"
	"github.com/guttosm/usdtpulse/internal/exchange"
	"github.com/guttosm/usdtpulse/internal/service"
)

// marketDataFactory is an indirection for unit testing; defaults to the Binance REST client.
var marketDataFactory = func(cfg config.ExchangeConfig) exchange.MarketData {
	return exchange.NewClient(cfg)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router and a cleanup function for graceful shutdown.
//
// Responsibilities:
//   - Builds the exchange client once from cfg.Exchange.
//   - Initializes the snapshot and calculator services.
//   - Creates the HTTP handler layer and router.
//   - Registers health and readiness probes (readiness pings the exchange).
//   - Provides a cleanup function that releases idle exchange connections.
//
// Parameters:
//   - cfg (config.Config): configuration loaded at startup.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	market := marketDataFactory(cfg.Exchange)

	snapshot := service.NewSnapshotService(market, cfg.Market.QuoteMarker, cfg.Market.TopN)
	calc := service.NewCalculatorService()

	handler := api.NewHandler(snapshot, calc)
	router := api.NewRouter(handler, cfg.Server.RateLimitPerMinute)

	api.NewHealthHandler(market.Ping).Register(router)

	cleanup := func() {
		market.Close()
	}

	return router, cleanup
}

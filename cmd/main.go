package main

//
//  @title           usdtpulse API
//  @version         1.0
//  @description     USDT pair screener and position-sizing calculator.
//  @termsOfService  https://github.com/guttosm/usdtpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/usdtpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8282
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description Top USDT pairs ranked by 24h quote volume
//
//  @tag.name        calculator
//  @tag.description Stop-loss and take-profit sizing
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/usdtpulse/config"
	_ "github.com/guttosm/usdtpulse/docs" // swagger docs
	"github.com/guttosm/usdtpulse/internal/app"
	"github.com/guttosm/usdtpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., idle exchange connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the usdtpulse application.
//
// Flags:
//   - --port: Port for the HTTP server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("config error")
	}

	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	port := flag.String("port", cfg.Server.Port, "Port for the HTTP server")
	flag.Parse()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.L().Info().
		Str("exchange", cfg.Exchange.BaseURL).
		Str("quote_marker", cfg.Market.QuoteMarker).
		Int("top_n", cfg.Market.TopN).
		Bool("api_key_set", cfg.Exchange.APIKey != "").
		Msg("starting API server")

	router, cleanup := app.InitializeApp(cfg)

	server := startServer(router, *port)
	gracefulShutdown(ctx, server, cleanup)
}

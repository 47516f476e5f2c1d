package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the exchange connection.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8282
//	BINANCE_API_KEY=...
//	BINANCE_API_SECRET=...
//	BINANCE_BASE_URL=https://api.binance.com
//	BINANCE_TIMEOUT=10s
//	MARKET_QUOTE_MARKER=USDT
//	MARKET_TOP_N=20
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Exchange ExchangeConfig // Binance REST connection settings
	Market   MarketConfig   // Screener filter settings
	Log      LogConfig      // Logger settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string // TCP port the HTTP server listens on (e.g., "8282")
	RateLimitPerMinute int    // Requests allowed per client IP per minute
}

// ExchangeConfig defines how to reach the exchange REST API.
//
// Fields:
//   - APIKey: sent as X-MBX-APIKEY when not empty.
//   - APISecret: kept alongside the key; absence is not validated here.
//   - BaseURL: REST root, e.g. https://api.binance.com.
//   - Timeout: per-request timeout applied to every outbound call.
type ExchangeConfig struct {
	APIKey    string
	APISecret string
	BaseURL   string
	Timeout   time.Duration
}

// MarketConfig controls which pairs the screener keeps and how many it returns.
type MarketConfig struct {
	QuoteMarker string
	TopN        int
}

// LogConfig holds logger level and output format.
type LogConfig struct {
	Level  string
	Pretty bool
}

// LoadConfig builds a Config by reading from .env file or directly from
// environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// The result is returned by value and passed explicitly to the app wiring;
// nothing is kept in package state.
func LoadConfig() (Config, error) {
	v := viper.New()

	// Default values
	v.SetDefault("SERVER_PORT", "8282")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	v.SetDefault("BINANCE_API_KEY", "")
	v.SetDefault("BINANCE_API_SECRET", "")
	v.SetDefault("BINANCE_BASE_URL", "https://api.binance.com")
	v.SetDefault("BINANCE_TIMEOUT", "10s")

	v.SetDefault("MARKET_QUOTE_MARKER", "USDT")
	v.SetDefault("MARKET_TOP_N", 20)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	v.SetConfigFile(".env")
	_ = v.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	v.AutomaticEnv()

	cfg := Config{
		Server: ServerConfig{
			Port:               v.GetString("SERVER_PORT"),
			RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Exchange: ExchangeConfig{
			APIKey:    v.GetString("BINANCE_API_KEY"),
			APISecret: v.GetString("BINANCE_API_SECRET"),
			BaseURL:   strings.TrimRight(v.GetString("BINANCE_BASE_URL"), "/"),
			Timeout:   v.GetDuration("BINANCE_TIMEOUT"),
		},
		Market: MarketConfig{
			QuoteMarker: strings.ToUpper(strings.TrimSpace(v.GetString("MARKET_QUOTE_MARKER"))),
			TopN:        v.GetInt("MARKET_TOP_N"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validateConfig ensures required variables are present.
//
// API key and secret are intentionally absent from the list: the exchange
// rejects the call at request time if it needs them.
func validateConfig(cfg Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}
	if cfg.Exchange.BaseURL == "" {
		missing = append(missing, "BINANCE_BASE_URL")
	}
	if cfg.Exchange.Timeout <= 0 {
		missing = append(missing, "BINANCE_TIMEOUT")
	}
	if cfg.Market.QuoteMarker == "" {
		missing = append(missing, "MARKET_QUOTE_MARKER")
	}
	if cfg.Market.TopN <= 0 {
		missing = append(missing, "MARKET_TOP_N")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid environment variables: %v", missing)
	}
	return nil
}

package exchange

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/guttosm/usdtpulse/config"
	"github.com/guttosm/usdtpulse/internal/domain/models"
)

const (
	tickerPath = "/api/v3/ticker/24hr"
	pingPath   = "/api/v3/ping"
	apiKeyHdr  = "X-MBX-APIKEY"
)

// MarketData is the read-only exchange surface the service layer depends on.
type MarketData interface {
	Tickers24h(ctx context.Context) ([]models.Ticker, error)
	Ping(ctx context.Context) error
	Close()
}

// APIError is the error body Binance returns with non-2xx responses.
type APIError struct {
	Status int    `json:"-"`
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("binance: http %d", e.Status)
	}
	return fmt.Sprintf("binance: http %d: code %d: %s", e.Status, e.Code, e.Msg)
}

// Client talks to the Binance spot REST API.
type Client struct {
	http *resty.Client
}

// NewClient builds a Client from an explicit exchange configuration.
//
// The API key, when set, is attached to every request. Ticker and ping are
// public endpoints, so the secret is not needed here.
func NewClient(cfg config.ExchangeConfig) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		rc.SetHeader(apiKeyHdr, cfg.APIKey)
	}
	return &Client{http: rc}
}

// Tickers24h fetches the 24h rolling statistics for every symbol in one call.
func (c *Client) Tickers24h(ctx context.Context) ([]models.Ticker, error) {
	var (
		tickers []models.Ticker
		apiErr  APIError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		ForceContentType("application/json").
		SetResult(&tickers).
		SetError(&apiErr).
		Get(tickerPath)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", tickerPath, err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return nil, &apiErr
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %d", tickerPath, resp.StatusCode())
	}
	// a null body decodes without error but carries no tickers
	if tickers == nil {
		return nil, fmt.Errorf("get %s: response is not a ticker array", tickerPath)
	}

	return tickers, nil
}

// Ping checks that the REST API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	var apiErr APIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiErr).
		Get(pingPath)
	if err != nil {
		return fmt.Errorf("get %s: %w", pingPath, err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return &apiErr
	}
	return nil
}

// Close releases idle keep-alive connections held by the underlying transport.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

var _ MarketData = (*Client)(nil)

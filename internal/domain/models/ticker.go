package models

import "github.com/shopspring/decimal"

// Ticker is a 24-hour statistics snapshot for one exchange symbol,
// as returned by GET /api/v3/ticker/24hr.
//
// Binance encodes every quantity as a JSON string; decimal.Decimal decodes
// those without going through float64, so malformed values fail the decode.
type Ticker struct {
	Symbol             string          `json:"symbol"`
	LastPrice          decimal.Decimal `json:"lastPrice"`
	HighPrice          decimal.Decimal `json:"highPrice"`
	LowPrice           decimal.Decimal `json:"lowPrice"`
	AskPrice           decimal.Decimal `json:"askPrice"`
	BidPrice           decimal.Decimal `json:"bidPrice"`
	QuoteVolume        decimal.Decimal `json:"quoteVolume"`
	PriceChangePercent decimal.Decimal `json:"priceChangePercent"`
}

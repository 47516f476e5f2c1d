package models

// RankedPair is a ticker that passed the quote-marker filter, enriched with
// derived metrics. It lives for a single /data request.
//
// Fields:
//   - Spread: |ask - bid| / last * 100, two decimals.
//   - Volatility: |high - low| / last * 100, two decimals.
//   - Volume: 24h quote volume, used for ranking.
type RankedPair struct {
	Symbol         string
	CurrentPrice   float64
	Volume         float64
	PriceChange24h float64
	Spread         float64
	HighPrice      float64
	LowPrice       float64
	Volatility     float64
}

package dto

import "github.com/guttosm/usdtpulse/internal/domain/models"

// PairResponse is one element of the GET /data array.
type PairResponse struct {
	Symbol         string  `json:"symbol" example:"BTCUSDT"`
	CurrentPrice   float64 `json:"current_price" example:"64250.12"`
	Volume         float64 `json:"volume" example:"1543200934.55"`
	PriceChange24h float64 `json:"price_change_24h" example:"-1.25"`
	Spread         float64 `json:"spread" example:"0.01"`
	HighPrice      float64 `json:"high_price" example:"65500"`
	LowPrice       float64 `json:"low_price" example:"63100.5"`
	Volatility     float64 `json:"volatility" example:"3.73"`
}

// NewPairResponses maps ranked pairs to their wire form, preserving order.
// The result is never nil so an empty ranking encodes as [].
func NewPairResponses(pairs []models.RankedPair) []PairResponse {
	out := make([]PairResponse, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, PairResponse{
			Symbol:         p.Symbol,
			CurrentPrice:   p.CurrentPrice,
			Volume:         p.Volume,
			PriceChange24h: p.PriceChange24h,
			Spread:         p.Spread,
			HighPrice:      p.HighPrice,
			LowPrice:       p.LowPrice,
			Volatility:     p.Volatility,
		})
	}
	return out
}

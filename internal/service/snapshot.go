package service

import (
	"context"
	"sort"
	"strings"

	"github.com/guttosm/usdtpulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

const (
	// DefaultQuoteMarker selects pairs quoted against the stable asset.
	DefaultQuoteMarker = "USDT"
	// DefaultTopN is the number of pairs returned by /data.
	DefaultTopN = 20
)

var hundred = decimal.NewFromInt(100)

// TickerSource provides a fresh 24h ticker snapshot on every call.
type TickerSource interface {
	Tickers24h(ctx context.Context) ([]models.Ticker, error)
}

// SnapshotService ranks quote-marker pairs by 24h quote volume.
type SnapshotService interface {
	TopPairs(ctx context.Context) ([]models.RankedPair, error)
}

type snapshotService struct {
	source TickerSource
	marker string
	topN   int
}

// NewSnapshotService returns a SnapshotService reading from source.
// Empty marker or non-positive topN fall back to the defaults.
func NewSnapshotService(source TickerSource, marker string, topN int) SnapshotService {
	if marker == "" {
		marker = DefaultQuoteMarker
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &snapshotService{source: source, marker: marker, topN: topN}
}

func (s *snapshotService) TopPairs(ctx context.Context) ([]models.RankedPair, error) {
	tickers, err := s.source.Tickers24h(ctx)
	if err != nil {
		return nil, &UpstreamError{Op: "fetch 24h tickers", Err: err}
	}
	return RankPairs(tickers, s.marker, s.topN), nil
}

// RankPairs keeps tickers whose symbol contains marker, derives spread and
// volatility, and returns at most limit pairs ordered by quote volume
// descending. Tickers with a zero last price are dropped. Ties keep the
// exchange order.
func RankPairs(tickers []models.Ticker, marker string, limit int) []models.RankedPair {
	type ranked struct {
		pair   models.RankedPair
		volume decimal.Decimal
	}

	kept := make([]ranked, 0, len(tickers))
	for _, t := range tickers {
		if !strings.Contains(t.Symbol, marker) {
			continue
		}
		last := t.LastPrice
		if last.IsZero() {
			continue
		}

		spread := percentOf(t.AskPrice.Sub(t.BidPrice).Abs(), last)
		volatility := percentOf(t.HighPrice.Sub(t.LowPrice).Abs(), last)

		kept = append(kept, ranked{
			volume: t.QuoteVolume,
			pair: models.RankedPair{
				Symbol:         t.Symbol,
				CurrentPrice:   last.InexactFloat64(),
				Volume:         t.QuoteVolume.InexactFloat64(),
				PriceChange24h: t.PriceChangePercent.InexactFloat64(),
				Spread:         spread,
				HighPrice:      t.HighPrice.InexactFloat64(),
				LowPrice:       t.LowPrice.InexactFloat64(),
				Volatility:     volatility,
			},
		})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].volume.GreaterThan(kept[j].volume)
	})

	if limit >= 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	out := make([]models.RankedPair, len(kept))
	for i, r := range kept {
		out[i] = r.pair
	}
	return out
}

// percentOf returns part/whole*100 rounded to two decimals. whole must be non-zero.
func percentOf(part, whole decimal.Decimal) float64 {
	return part.Div(whole).Mul(hundred).Round(2).InexactFloat64()
}

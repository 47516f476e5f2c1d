package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/guttosm/usdtpulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

type stubSource struct {
	tickers []models.Ticker
	err     error
	calls   int
}

func (s *stubSource) Tickers24h(_ context.Context) ([]models.Ticker, error) {
	s.calls++
	return s.tickers, s.err
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ticker(symbol, last, volume string) models.Ticker {
	return models.Ticker{
		Symbol:             symbol,
		LastPrice:          d(last),
		HighPrice:          d(last),
		LowPrice:           d(last),
		AskPrice:           d(last),
		BidPrice:           d(last),
		QuoteVolume:        d(volume),
		PriceChangePercent: d("0"),
	}
}

func TestRankPairs_FiltersMarkerAndZeroPrice(t *testing.T) {
	in := []models.Ticker{
		ticker("BTCUSDT", "64000", "100"),
		ticker("ETHBTC", "0.05", "5000"),
		ticker("DEADUSDT", "0", "9999"),
		ticker("USDTTRY", "32.1", "50"),
	}

	out := RankPairs(in, "USDT", 20)

	if len(out) != 2 {
		t.Fatalf("want 2 pairs, got %d: %+v", len(out), out)
	}
	for _, p := range out {
		if !strings.Contains(p.Symbol, "USDT") {
			t.Fatalf("symbol without marker kept: %s", p.Symbol)
		}
		if p.CurrentPrice == 0 {
			t.Fatalf("zero price kept: %s", p.Symbol)
		}
	}
	if out[0].Symbol != "BTCUSDT" || out[1].Symbol != "USDTTRY" {
		t.Fatalf("unexpected order: %s, %s", out[0].Symbol, out[1].Symbol)
	}
}

func TestRankPairs_OrderAndLimit(t *testing.T) {
	var in []models.Ticker
	for i := 0; i < 30; i++ {
		in = append(in, ticker(fmt.Sprintf("C%02dUSDT", i), "1", fmt.Sprintf("%d.5", (i*7)%30)))
	}

	out := RankPairs(in, "USDT", DefaultTopN)

	if len(out) != DefaultTopN {
		t.Fatalf("want %d pairs, got %d", DefaultTopN, len(out))
	}
	for i := 0; i+1 < len(out); i++ {
		if out[i].Volume < out[i+1].Volume {
			t.Fatalf("not sorted at %d: %v < %v", i, out[i].Volume, out[i+1].Volume)
		}
	}
	if out[0].Volume != 29.5 {
		t.Fatalf("highest volume should lead, got %v", out[0].Volume)
	}
}

func TestRankPairs_StableOnTies(t *testing.T) {
	in := []models.Ticker{
		ticker("AUSDT", "1", "10"),
		ticker("BUSDT", "1", "10"),
		ticker("CUSDT", "1", "10"),
	}
	out := RankPairs(in, "USDT", 20)
	got := []string{out[0].Symbol, out[1].Symbol, out[2].Symbol}
	if strings.Join(got, ",") != "AUSDT,BUSDT,CUSDT" {
		t.Fatalf("tie order changed: %v", got)
	}
}

func TestRankPairs_DerivedMetrics(t *testing.T) {
	in := []models.Ticker{{
		Symbol:             "SOLUSDT",
		LastPrice:          d("150"),
		HighPrice:          d("160"),
		LowPrice:           d("145"),
		AskPrice:           d("150.02"),
		BidPrice:           d("150.00"),
		QuoteVolume:        d("123456.78"),
		PriceChangePercent: d("-2.345"),
	}}

	out := RankPairs(in, "USDT", 20)
	if len(out) != 1 {
		t.Fatalf("want 1 pair, got %d", len(out))
	}
	p := out[0]
	// 0.02 / 150 * 100 = 0.01333 -> 0.01
	if p.Spread != 0.01 {
		t.Fatalf("spread=%v", p.Spread)
	}
	// 15 / 150 * 100 = 10
	if p.Volatility != 10 {
		t.Fatalf("volatility=%v", p.Volatility)
	}
	if p.CurrentPrice != 150 || p.HighPrice != 160 || p.LowPrice != 145 {
		t.Fatalf("prices=%+v", p)
	}
	if p.Volume != 123456.78 || p.PriceChange24h != -2.345 {
		t.Fatalf("volume/change=%+v", p)
	}
}

func TestRankPairs_SpreadUsesAbsoluteGap(t *testing.T) {
	in := []models.Ticker{{
		Symbol:      "XUSDT",
		LastPrice:   d("3"),
		HighPrice:   d("2"),
		LowPrice:    d("3"),
		AskPrice:    d("1"),
		BidPrice:    d("2"),
		QuoteVolume: d("1"),
	}}
	p := RankPairs(in, "USDT", 20)[0]
	// 1/3*100 = 33.333.. -> 33.33
	if p.Spread != 33.33 || p.Volatility != 33.33 {
		t.Fatalf("spread=%v volatility=%v", p.Spread, p.Volatility)
	}
}

func TestRankPairs_Empty(t *testing.T) {
	out := RankPairs(nil, "USDT", 20)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestSnapshotService_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		src     *stubSource
		wantErr bool
		wantLen int
	}{
		{
			name:    "success",
			src:     &stubSource{tickers: []models.Ticker{ticker("BTCUSDT", "1", "1"), ticker("ETHBTC", "1", "1")}},
			wantLen: 1,
		},
		{
			name:    "upstream error",
			src:     &stubSource{err: errors.New("connection refused")},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSnapshotService(tc.src, "", 0)
			out, err := svc.TopPairs(context.Background())
			if tc.src.calls != 1 {
				t.Fatalf("expected exactly one upstream call, got %d", tc.src.calls)
			}
			if tc.wantErr {
				var up *UpstreamError
				if !errors.As(err, &up) || out != nil {
					t.Fatalf("expected UpstreamError and no pairs, got out=%+v err=%v", out, err)
				}
				if !strings.Contains(err.Error(), "connection refused") {
					t.Fatalf("cause lost: %v", err)
				}
				return
			}
			if err != nil || len(out) != tc.wantLen {
				t.Fatalf("unexpected: out=%+v err=%v", out, err)
			}
		})
	}
}

func TestNewSnapshotService_CustomMarkerAndLimit(t *testing.T) {
	src := &stubSource{tickers: []models.Ticker{
		ticker("BTCBUSD", "1", "3"),
		ticker("ETHBUSD", "1", "2"),
		ticker("BTCUSDT", "1", "9"),
	}}
	out, err := NewSnapshotService(src, "BUSD", 1).TopPairs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Symbol != "BTCBUSD" {
		t.Fatalf("unexpected %+v", out)
	}
}

// Exact halves round away from zero in decimal, not to the nearest binary float.
func TestPercentOf_HalvesRoundAwayFromZero(t *testing.T) {
	cases := []struct {
		part, whole string
		want        float64
	}{
		{"0.125", "100", 0.13},
		{"0.135", "100", 0.14},
		{"1.005", "100", 1.01},
		{"0.124", "100", 0.12},
	}
	for _, tc := range cases {
		got := percentOf(decimal.RequireFromString(tc.part), decimal.RequireFromString(tc.whole))
		if got != tc.want {
			t.Fatalf("percentOf(%s, %s)=%v want %v", tc.part, tc.whole, got, tc.want)
		}
	}
}

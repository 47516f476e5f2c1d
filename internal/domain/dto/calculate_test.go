package dto

import (
	"encoding/json"
	"testing"

	"github.com/guttosm/usdtpulse/internal/domain/models"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "integer", in: `10`, want: 10},
		{name: "float", in: `99.5`, want: 99.5},
		{name: "exponent", in: `1e3`, want: 1000},
		{name: "numeric string", in: `"42.25"`, want: 42.25},
		{name: "padded string", in: `" 7 "`, want: 7},
		{name: "negative string", in: `"-3"`, want: -3},
		{name: "word", in: `"abc"`, wantErr: true},
		{name: "empty string", in: `""`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
		{name: "object", in: `{}`, wantErr: true},
		{name: "array", in: `[1]`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tc.in), &n)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s, got %v", tc.in, n)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(n) != tc.want {
				t.Fatalf("got %v want %v", float64(n), tc.want)
			}
		})
	}
}

func TestCalculateRequest_Inputs(t *testing.T) {
	var req CalculateRequest
	body := `{"entry_price":"100","leverage":10,"position_size":1,"risk_percent":"1","current_price":101}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := req.Inputs()
	want := models.TradeInputs{EntryPrice: 100, Leverage: 10, PositionSize: 1, RiskPercent: 1, CurrentPrice: 101}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestCalculateRequest_NullLeavesFieldUnset(t *testing.T) {
	var req CalculateRequest
	if err := json.Unmarshal([]byte(`{"entry_price":null}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.EntryPrice != nil || req.Leverage != nil {
		t.Fatalf("expected nil fields, got %+v", req)
	}
}

func TestNewPairResponses_EmptyIsNotNil(t *testing.T) {
	out := NewPairResponses(nil)
	if out == nil {
		t.Fatalf("expected empty slice")
	}
	b, _ := json.Marshal(out)
	if string(b) != "[]" {
		t.Fatalf("got %s", b)
	}
}

func TestNewCalculateResponse(t *testing.T) {
	resp := NewCalculateResponse(models.TradeOutputs{StopLossPrice: 99.999, TradeType: models.TradeLong})
	if resp.StopLossPrice != 99.999 || resp.TradeType != "Long" {
		t.Fatalf("unexpected %+v", resp)
	}
}

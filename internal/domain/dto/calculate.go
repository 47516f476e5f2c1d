package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/usdtpulse/internal/domain/models"
)

// Number accepts either a JSON number or a numeric string ("100", " 1e3 ").
// Booleans, objects and non-numeric strings are rejected.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		return n.parse(strings.TrimSpace(s))
	}
	return n.parse(string(raw))
}

func (n *Number) parse(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("could not convert %q to a number", s)
	}
	*n = Number(f)
	return nil
}

// CalculateRequest is the POST /calculate body. Every field is required.
type CalculateRequest struct {
	EntryPrice   *Number `json:"entry_price" binding:"required" swaggertype:"number" example:"100"`
	Leverage     *Number `json:"leverage" binding:"required" swaggertype:"number" example:"10"`
	PositionSize *Number `json:"position_size" binding:"required" swaggertype:"number" example:"1"`
	RiskPercent  *Number `json:"risk_percent" binding:"required" swaggertype:"number" example:"1"`
	CurrentPrice *Number `json:"current_price" binding:"required" swaggertype:"number" example:"100"`
}

// Inputs converts a bound request to calculator inputs. Callers must bind
// with validation first; nil fields read as zero.
func (r CalculateRequest) Inputs() models.TradeInputs {
	return models.TradeInputs{
		EntryPrice:   deref(r.EntryPrice),
		Leverage:     deref(r.Leverage),
		PositionSize: deref(r.PositionSize),
		RiskPercent:  deref(r.RiskPercent),
		CurrentPrice: deref(r.CurrentPrice),
	}
}

func deref(n *Number) float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}

// CalculateResponse is the POST /calculate success body.
type CalculateResponse struct {
	StopLossPrice      float64 `json:"stop_loss_price" example:"99.999"`
	TakeProfitPrice    float64 `json:"take_profit_price" example:"100.002"`
	RiskAmount         float64 `json:"risk_amount" example:"0.01"`
	RewardAmount       float64 `json:"reward_amount" example:"0.02"`
	DistanceToStopLoss float64 `json:"distance_to_stop_loss" example:"0.001"`
	TradeType          string  `json:"trade_type" example:"Short"`
}

func NewCalculateResponse(out models.TradeOutputs) CalculateResponse {
	return CalculateResponse{
		StopLossPrice:      out.StopLossPrice,
		TakeProfitPrice:    out.TakeProfitPrice,
		RiskAmount:         out.RiskAmount,
		RewardAmount:       out.RewardAmount,
		DistanceToStopLoss: out.DistanceToStopLoss,
		TradeType:          string(out.TradeType),
	}
}

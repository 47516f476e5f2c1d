package service

import (
	"math"

	"github.com/guttosm/usdtpulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

const (
	// rewardRiskRatio fixes take-profit at twice the stop distance.
	rewardRiskRatio = 2
	outputPlaces    = 5
)

// CalculatorService derives a stop-loss/take-profit plan from trade inputs.
type CalculatorService interface {
	Calculate(in models.TradeInputs) (models.TradeOutputs, error)
}

type calculatorService struct{}

func NewCalculatorService() CalculatorService {
	return calculatorService{}
}

func (calculatorService) Calculate(in models.TradeInputs) (models.TradeOutputs, error) {
	return Calculate(in)
}

// Calculate is pure: the same inputs always produce the same outputs.
//
//	risk_amount           = position_size * risk_percent / 100
//	stop_loss_price       = entry_price - risk_amount / (position_size * leverage)
//	take_profit_price     = entry_price + 2 * (entry_price - stop_loss_price)
//	reward_amount         = (take_profit_price - entry_price) * position_size * leverage
//	distance_to_stop_loss = |entry_price - stop_loss_price|
//
// Zero position size or leverage is rejected rather than divided by.
func Calculate(in models.TradeInputs) (models.TradeOutputs, error) {
	if err := validateInputs(in); err != nil {
		return models.TradeOutputs{}, err
	}

	riskAmount := in.PositionSize * in.RiskPercent / 100
	stopLoss := in.EntryPrice - riskAmount/(in.PositionSize*in.Leverage)
	takeProfit := in.EntryPrice + rewardRiskRatio*(in.EntryPrice-stopLoss)
	rewardAmount := (takeProfit - in.EntryPrice) * in.PositionSize * in.Leverage
	distance := math.Abs(in.EntryPrice - stopLoss)

	out := models.TradeOutputs{
		StopLossPrice:      round5(stopLoss),
		TakeProfitPrice:    round5(takeProfit),
		RiskAmount:         round5(riskAmount),
		RewardAmount:       round5(rewardAmount),
		DistanceToStopLoss: round5(distance),
		TradeType:          tradeType(in.EntryPrice, in.CurrentPrice),
	}
	for _, v := range []float64{out.StopLossPrice, out.TakeProfitPrice, out.RiskAmount, out.RewardAmount, out.DistanceToStopLoss} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return models.TradeOutputs{}, &ValidationError{Reason: "inputs produce a non-finite result"}
		}
	}
	return out, nil
}

func validateInputs(in models.TradeInputs) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"entry_price", in.EntryPrice},
		{"leverage", in.Leverage},
		{"position_size", in.PositionSize},
		{"risk_percent", in.RiskPercent},
		{"current_price", in.CurrentPrice},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ValidationError{Field: f.name, Reason: "must be a finite number"}
		}
	}
	if in.PositionSize == 0 {
		return &ValidationError{Field: "position_size", Reason: "must not be zero"}
	}
	if in.Leverage == 0 {
		return &ValidationError{Field: "leverage", Reason: "must not be zero"}
	}
	return nil
}

func round5(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(outputPlaces).InexactFloat64()
}

func tradeType(entry, current float64) models.TradeType {
	if entry < current {
		return models.TradeLong
	}
	return models.TradeShort
}

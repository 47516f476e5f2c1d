package models

// TradeInputs are the calculator parameters after coercion to float64.
type TradeInputs struct {
	EntryPrice   float64
	Leverage     float64
	PositionSize float64
	RiskPercent  float64
	CurrentPrice float64
}

// TradeType is the trade direction implied by entry vs. current price.
type TradeType string

const (
	TradeLong  TradeType = "Long"
	TradeShort TradeType = "Short"
)

// TradeOutputs holds the derived stop-loss/take-profit plan, each value
// rounded to 5 decimal places.
type TradeOutputs struct {
	StopLossPrice      float64
	TakeProfitPrice    float64
	RiskAmount         float64
	RewardAmount       float64
	DistanceToStopLoss float64
	TradeType          TradeType
}

package entity

// Position is a trading position. Positions are read-only in the dashboard;
// all lifecycle transitions happen at the backend.
type Position struct {
	ID         int64   `json:"id"`
	Type       string  `json:"type"`
	Size       float64 `json:"size"`
	SymbolName string  `json:"symbolName"`
	Status     string  `json:"status"`
	StartPrice float64 `json:"startPrice"`
	StopPrice  float64 `json:"stopPrice"`
	StopLoss   float64 `json:"stopLoss"`
	TakeProfit float64 `json:"takeProfit"`
	Commission float64 `json:"commission"`

	// RealProfit is the realized profit; the backend serializes it under
	// this shortened key.
	RealProfit float64 `json:"realProfit"`

	CloseReason string `json:"closeReason"`
	CreatedAt   string `json:"createdAt"`
}

package model

import "time"

// Leverage levels permitted on a buy.
var AllowedLeverage = []int{1, 2, 5, 10}

// LeveragedPosition is a long holding. LiquidationPrice is set iff
// Leverage > 1 and equals EntryPrice × (1 − 1/Leverage), recomputed as the
// max of old and new whenever the position is averaged up.
type LeveragedPosition struct {
	Symbol           string    `json:"symbol"`
	Quantity         float64   `json:"quantity"`
	AverageCost      float64   `json:"average_cost"`
	Leverage         int       `json:"leverage"`
	EntryPrice       float64   `json:"entry_price"`
	LiquidationPrice float64   `json:"liquidation_price,omitempty"`
	OpenedAt         time.Time `json:"opened_at"`
}

// Margin returns the cash posted for the position.
func (p *LeveragedPosition) Margin() float64 {
	if p.Leverage <= 0 {
		return p.Quantity * p.AverageCost
	}
	return p.Quantity * p.AverageCost / float64(p.Leverage)
}

// LiquidationEvent signals a forced close. Margin is forfeited whole.
type LiquidationEvent struct {
	Symbol     string    `json:"symbol"`
	Quantity   float64   `json:"quantity"`
	Price      float64   `json:"price"`
	MarginLost float64   `json:"margin_lost"`
	Leverage   int       `json:"leverage"`
	Time       time.Time `json:"time"`
}

package recorder

import "MarketForge/internal/model"

// TickSnapshot summarizes one engine batch for history.
type TickSnapshot struct {
	Class        model.AssetClass
	AvgPct       float64
	Sentiment    float64
	Instruments  int
	Liquidations int
}

// TradeEvent records a player buy or sell.
type TradeEvent struct {
	Symbol    string
	Side      string // "BUY" or "SELL"
	Quantity  float64
	Price     float64
	Leverage  int
	CashAfter float64
}

// Recorder persists simulation history for later analysis.
type Recorder interface {
	RecordTick(snap *TickSnapshot) error
	RecordNews(ev *model.NewsEvent) error
	RecordTrade(evt *TradeEvent) error
	RecordLiquidation(ev *model.LiquidationEvent) error
	RecordMacro(g *model.Gauges) error
	Close() error
}

package recorder

import "MarketForge/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTick(_ *TickSnapshot) error                  { return nil }
func (n *NoopRecorder) RecordNews(_ *model.NewsEvent) error               { return nil }
func (n *NoopRecorder) RecordTrade(_ *TradeEvent) error                   { return nil }
func (n *NoopRecorder) RecordLiquidation(_ *model.LiquidationEvent) error { return nil }
func (n *NoopRecorder) RecordMacro(_ *model.Gauges) error                 { return nil }
func (n *NoopRecorder) Close() error                                      { return nil }

package model

import "time"

// AssetClass selects which stochastic model drives an instrument.
type AssetClass string

const (
	ClassEquity AssetClass = "EQUITY"
	ClassCrypto AssetClass = "CRYPTO"
)

// Sector tags used for beta scaling and sector news targeting.
// Crypto instruments carry SectorCrypto so crypto news can address them.
const (
	SectorTech       = "Tech"
	SectorConsumer   = "Consumer"
	SectorHealthcare = "Healthcare"
	SectorEnergy     = "Energy"
	SectorFinance    = "Finance"
	SectorIndustrial = "Industrial"
	SectorCrypto     = "Crypto"
)

// HistoryCapacity bounds the per-instrument price history.
const HistoryCapacity = 50

// PricePoint is a single history sample.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Instrument is one tradable asset and its evolving price state.
// BasePrice is immutable and anchors the clamp bounds; SessionOpen is
// display-only and reset each session.
type Instrument struct {
	Symbol      string       `json:"symbol"`
	Name        string       `json:"name"`
	Class       AssetClass   `json:"class"`
	Sector      string       `json:"sector,omitempty"`
	Price       float64      `json:"price"`
	BasePrice   float64      `json:"base_price"`
	SessionOpen float64      `json:"session_open"`
	Volatility  float64      `json:"volatility"`
	History     []PricePoint `json:"history"`
}

// PushHistory appends a sample, evicting the oldest beyond HistoryCapacity.
func (in *Instrument) PushHistory(t time.Time, value float64) {
	in.History = append(in.History, PricePoint{Time: t, Value: value})
	if len(in.History) > HistoryCapacity {
		in.History = in.History[len(in.History)-HistoryCapacity:]
	}
}

// SessionChangePct returns the percent move since session open, for display.
func (in *Instrument) SessionChangePct() float64 {
	if in.SessionOpen <= 0 {
		return 0
	}
	return (in.Price - in.SessionOpen) / in.SessionOpen * 100
}

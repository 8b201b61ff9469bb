package model

import "time"

// NewsType classifies the scope of a news event.
type NewsType string

const (
	NewsCompany  NewsType = "COMPANY"
	NewsSector   NewsType = "SECTOR"
	NewsMarket   NewsType = "MARKET"
	NewsEconomic NewsType = "ECONOMIC"
)

// Severity grades a news event for display.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Suggestion is the hint attached to a news event.
type Suggestion string

const (
	SuggestBuy  Suggestion = "BUY"
	SuggestSell Suggestion = "SELL"
	SuggestHold Suggestion = "HOLD"
)

// MaxNewsImpact bounds |Impact| for every generated event.
const MaxNewsImpact = 0.15

// NewsEvent is immutable once created. Symbol is set only for COMPANY
// events, Sector only for SECTOR events.
type NewsEvent struct {
	ID         string     `json:"id"`
	Time       time.Time  `json:"time"`
	Type       NewsType   `json:"type"`
	Severity   Severity   `json:"severity"`
	Headline   string     `json:"headline"`
	Symbol     string     `json:"symbol,omitempty"`
	Sector     string     `json:"sector,omitempty"`
	Impact     float64    `json:"impact"`
	Suggestion Suggestion `json:"suggestion,omitempty"`
	Class      AssetClass `json:"class"`
}

package model

// MacroState is the slow-moving economic regime. All three scalars are
// bounded and mean-reverting; see engine.AdvanceMacro for the update rule.
type MacroState struct {
	InterestRate float64 `json:"interest_rate"`
	GDPGrowth    float64 `json:"gdp_growth"`
	Inflation    float64 `json:"inflation"`
}

// Recession reports whether the regime caps equity ceilings.
func (m MacroState) Recession() bool { return m.GDPGrowth < 0 }

// Phase derives the cyclical phase label for display.
func (m MacroState) Phase() string {
	switch {
	case m.GDPGrowth < 0:
		return "recession"
	case m.GDPGrowth > 3.0:
		return "overheating"
	case m.Inflation > 3.0:
		return "inflationary"
	default:
		return "expansion"
	}
}

// Gauges is the read-only macro/sentiment view exposed to the UI.
type Gauges struct {
	Macro           MacroState `json:"macro"`
	Phase           string     `json:"phase"`
	EquitySentiment float64    `json:"equity_sentiment"`
	CryptoSentiment float64    `json:"crypto_sentiment"`
}

package news

// wireItem is one fixed market/economic headline with its signed impact.
// Every impact here must stay inside ±model.MaxNewsImpact.
type wireItem struct {
	Headline string
	Impact   float64
}

var equityMarketWire = []wireItem{
	{"Global markets rally on trade breakthrough", 0.05},
	{"Index futures surge in broad risk-on move", 0.04},
	{"Fed signals pause, equities drift higher", 0.03},
	{"Volatility spike drags the whole tape lower", -0.04},
	{"Flash crash ripples through major indices", -0.06},
	{"Margin calls cascade across the street", -0.05},
}

var equityEconomicWire = []wireItem{
	{"GDP print comes in well above expectations", 0.04},
	{"Jobs report smashes estimates", 0.03},
	{"Consumer confidence rebounds sharply", 0.03},
	{"Inflation runs hot, rate-hike odds jump", -0.05},
	{"Manufacturing activity contracts again", -0.03},
	{"Yield curve inversion deepens", -0.04},
}

var cryptoMarketWire = []wireItem{
	{"Spot ETF inflows lift the entire crypto market", 0.08},
	{"Layer-2 adoption accelerates across chains", 0.05},
	{"Institutional custody launch sparks rally", 0.06},
	{"Major exchange halts withdrawals", -0.09},
	{"Stablecoin depeg scare hits risk appetite", -0.07},
	{"Cascade of leveraged longs gets flushed", -0.06},
}

var cryptoEconomicWire = []wireItem{
	{"Crypto framework bill clears committee", 0.06},
	{"Sovereign wealth fund discloses crypto allocation", 0.07},
	{"Central bank warns banks over crypto exposure", -0.05},
	{"Tax authority tightens reporting rules for tokens", -0.04},
	{"Mining energy crackdown expands", -0.03},
}

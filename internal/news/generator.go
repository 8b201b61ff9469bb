// Package news emits probabilistic typed news events on a minimum-interval
// gate. One generator instance serves each asset class; impact magnitudes
// never exceed model.MaxNewsImpact in any branch.
package news

import (
	"fmt"
	"math/rand"
	"time"

	"MarketForge/internal/catalog"
	"MarketForge/internal/model"

	"github.com/google/uuid"
)

// Category selection thresholds (cumulative on one uniform draw).
const (
	companyCut = 0.40
	sectorCut  = 0.65
	marketCut  = 0.85
)

// Generator produces news events for one asset class. MinInterval and
// FireProbability are independent knobs: the interval is a hard floor, the
// probability applies only once the floor has passed.
type Generator struct {
	Class           model.AssetClass
	MinInterval     time.Duration
	FireProbability float64

	sectors   []string
	templates map[string][]string // symbol -> company headline templates
	names     map[string]string   // symbol -> display name
	market    []wireItem
	economic  []wireItem
}

// NewEquityGenerator builds the equity-class generator from catalog entries.
func NewEquityGenerator(entries []catalog.Entry) *Generator {
	g := &Generator{
		Class:           model.ClassEquity,
		MinInterval:     2 * time.Minute,
		FireProbability: 0.8,
		sectors:         catalog.EquitySectors(),
		market:          equityMarketWire,
		economic:        equityEconomicWire,
	}
	g.indexTemplates(entries, model.ClassEquity)
	return g
}

// NewCryptoGenerator builds the crypto-class generator. Crypto news uses
// a longer floor and a single "Crypto" sector tag.
func NewCryptoGenerator(entries []catalog.Entry) *Generator {
	g := &Generator{
		Class:           model.ClassCrypto,
		MinInterval:     3 * time.Minute,
		FireProbability: 0.8,
		sectors:         []string{model.SectorCrypto},
		market:          cryptoMarketWire,
		economic:        cryptoEconomicWire,
	}
	g.indexTemplates(entries, model.ClassCrypto)
	return g
}

func (g *Generator) indexTemplates(entries []catalog.Entry, class model.AssetClass) {
	g.templates = make(map[string][]string)
	g.names = make(map[string]string)
	for _, e := range entries {
		if e.Class != class || len(e.Headlines) == 0 {
			continue
		}
		g.templates[e.Symbol] = e.Headlines
		g.names[e.Symbol] = e.Name
	}
}

// Due reports whether the minimum interval since the last fire has elapsed.
func (g *Generator) Due(lastFired time.Time) bool {
	return time.Since(lastFired) >= g.MinInterval
}

// ShouldFire gates a poll: always false under the minimum interval, then
// true at FireProbability.
func (g *Generator) ShouldFire(lastFired time.Time) bool {
	if !g.Due(lastFired) {
		return false
	}
	return rand.Float64() < g.FireProbability
}

// Generate draws one event. It returns nil only when the company branch is
// selected and no instrument of this class has a headline template.
func (g *Generator) Generate(instruments []*model.Instrument) *model.NewsEvent {
	switch r := rand.Float64(); {
	case r < companyCut:
		return g.companyEvent(instruments)
	case r < sectorCut:
		return g.sectorEvent()
	case r < marketCut:
		return g.wireEvent(model.NewsMarket, g.market)
	default:
		return g.wireEvent(model.NewsEconomic, g.economic)
	}
}

func (g *Generator) companyEvent(instruments []*model.Instrument) *model.NewsEvent {
	var eligible []*model.Instrument
	for _, in := range instruments {
		if in.Class == g.Class && len(g.templates[in.Symbol]) > 0 {
			eligible = append(eligible, in)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	in := eligible[rand.Intn(len(eligible))]
	tmpl := g.templates[in.Symbol][rand.Intn(len(g.templates[in.Symbol]))]

	impact := 0.05 + rand.Float64()*0.10
	if rand.Float64() >= 0.7 {
		impact = -impact
	}

	abs := impact
	if abs < 0 {
		abs = -abs
	}
	severity := model.SeverityLow
	if abs > 0.10 {
		severity = model.SeverityHigh
	} else if abs > 0.07 {
		severity = model.SeverityMedium
	}

	return g.newEvent(model.NewsCompany, fmt.Sprintf(tmpl, g.names[in.Symbol]), impact, in.Symbol, "", severity, suggest(impact, 0.08))
}

func (g *Generator) sectorEvent() *model.NewsEvent {
	sector := g.sectors[rand.Intn(len(g.sectors))]

	impact := 0.03 + rand.Float64()*0.05
	if rand.Float64() >= 0.65 {
		impact = -impact
	}

	headline := fmt.Sprintf("%s sector in focus as flows rotate", sector)
	if impact < 0 {
		headline = fmt.Sprintf("%s sector slides on sour outlook", sector)
	}
	return g.newEvent(model.NewsSector, headline, impact, "", sector, model.SeverityMedium, suggest(impact, 0.05))
}

func (g *Generator) wireEvent(typ model.NewsType, wire []wireItem) *model.NewsEvent {
	item := wire[rand.Intn(len(wire))]
	severity := model.SeverityMedium
	if item.Impact > 0.04 || item.Impact < -0.04 {
		severity = model.SeverityHigh
	}
	return g.newEvent(typ, item.Headline, item.Impact, "", "", severity, suggest(item.Impact, 0.04))
}

func (g *Generator) newEvent(typ model.NewsType, headline string, impact float64, symbol, sector string, severity model.Severity, sug model.Suggestion) *model.NewsEvent {
	return &model.NewsEvent{
		ID:         uuid.NewString(),
		Time:       time.Now(),
		Type:       typ,
		Severity:   severity,
		Headline:   headline,
		Symbol:     symbol,
		Sector:     sector,
		Impact:     impact,
		Suggestion: sug,
		Class:      g.Class,
	}
}

func suggest(impact, threshold float64) model.Suggestion {
	switch {
	case impact > threshold:
		return model.SuggestBuy
	case impact < -threshold:
		return model.SuggestSell
	default:
		return model.SuggestHold
	}
}

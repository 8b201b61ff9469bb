// Package catalog holds the static instrument reference data the simulation
// is seeded from. A built-in set is used unless a YAML override is supplied.
package catalog

import (
	"fmt"
	"os"
	"time"

	"MarketForge/internal/model"

	"gopkg.in/yaml.v3"
)

// Entry is one catalog row. Headlines are company-news templates; an entry
// without templates is simply never picked for company news.
type Entry struct {
	Symbol     string           `yaml:"symbol"`
	Name       string           `yaml:"name"`
	Class      model.AssetClass `yaml:"class"`
	Sector     string           `yaml:"sector,omitempty"`
	BasePrice  float64          `yaml:"base_price"`
	Volatility float64          `yaml:"volatility"`
	Headlines  []string         `yaml:"headlines,omitempty"`
}

// Default returns the built-in catalog.
func Default() []Entry {
	return []Entry{
		{Symbol: "NOVA", Name: "NovaWare Systems", Class: model.ClassEquity, Sector: model.SectorTech, BasePrice: 184.00, Volatility: 1.4,
			Headlines: []string{
				"%s unveils next-generation AI accelerator",
				"%s beats quarterly earnings expectations",
				"%s faces antitrust scrutiny over platform fees",
			}},
		{Symbol: "QNT", Name: "Quantix Semiconductors", Class: model.ClassEquity, Sector: model.SectorTech, BasePrice: 96.50, Volatility: 1.8,
			Headlines: []string{
				"%s lands major foundry contract",
				"%s warns of chip inventory glut",
			}},
		{Symbol: "HRT", Name: "Heartland Foods", Class: model.ClassEquity, Sector: model.SectorConsumer, BasePrice: 54.20, Volatility: 0.9,
			Headlines: []string{
				"%s expands into overseas markets",
				"%s recalls flagship product line",
			}},
		{Symbol: "LUXE", Name: "Luxe Retail Group", Class: model.ClassEquity, Sector: model.SectorConsumer, BasePrice: 132.75, Volatility: 1.2,
			Headlines: []string{
				"%s reports record holiday sales",
				"%s shutters underperforming stores",
			}},
		{Symbol: "VITA", Name: "VitaGen Biopharma", Class: model.ClassEquity, Sector: model.SectorHealthcare, BasePrice: 78.30, Volatility: 1.6,
			Headlines: []string{
				"%s receives regulatory approval for new therapy",
				"%s trial results disappoint investors",
			}},
		{Symbol: "PETRO", Name: "Petrova Energy", Class: model.ClassEquity, Sector: model.SectorEnergy, BasePrice: 61.40, Volatility: 1.1,
			Headlines: []string{
				"%s announces major offshore discovery",
				"%s hit by refinery outage",
			}},
		{Symbol: "ATLS", Name: "Atlas Financial", Class: model.ClassEquity, Sector: model.SectorFinance, BasePrice: 112.90, Volatility: 1.0},
		{Symbol: "FORGE", Name: "Forgeline Industrial", Class: model.ClassEquity, Sector: model.SectorIndustrial, BasePrice: 88.10, Volatility: 0.8},

		{Symbol: "BTC", Name: "Bitcoin", Class: model.ClassCrypto, Sector: model.SectorCrypto, BasePrice: 64000, Volatility: 1.0,
			Headlines: []string{
				"%s ETF inflows hit weekly record",
				"Whale wallets accumulate %s ahead of halving",
				"Exchange outage sparks %s sell-off",
			}},
		{Symbol: "ETH", Name: "Ethereum", Class: model.ClassCrypto, Sector: model.SectorCrypto, BasePrice: 3100, Volatility: 1.2,
			Headlines: []string{
				"%s staking yields draw institutional interest",
				"Network congestion pushes %s fees to new highs",
			}},
		{Symbol: "SOL", Name: "Solana", Class: model.ClassCrypto, Sector: model.SectorCrypto, BasePrice: 148, Volatility: 1.7,
			Headlines: []string{
				"%s DeFi volume triples in a month",
				"Validator incident halts %s network",
			}},
		{Symbol: "DOGE", Name: "Dogecoin", Class: model.ClassCrypto, Sector: model.SectorCrypto, BasePrice: 0.12, Volatility: 2.2,
			Headlines: []string{
				"Viral meme sends %s trending",
			}},
	}
}

// EquitySectors is the fixed set sector news draws from.
func EquitySectors() []string {
	return []string{
		model.SectorTech,
		model.SectorConsumer,
		model.SectorHealthcare,
		model.SectorEnergy,
		model.SectorFinance,
		model.SectorIndustrial,
	}
}

// Load reads a catalog override from a YAML file. An empty path returns the
// built-in set.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}
	for i := range entries {
		if err := validate(&entries[i]); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	return entries, nil
}

func validate(e *Entry) error {
	if e.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if e.Class != model.ClassEquity && e.Class != model.ClassCrypto {
		return fmt.Errorf("%s: unknown class %q", e.Symbol, e.Class)
	}
	if e.BasePrice <= 0 {
		return fmt.Errorf("%s: base_price must be positive", e.Symbol)
	}
	if e.Volatility <= 0 {
		return fmt.Errorf("%s: volatility must be positive", e.Symbol)
	}
	return nil
}

// Instruments seeds a fresh instrument set from catalog entries. Prices
// start at base, session open at base, history with one sample.
func Instruments(entries []Entry, now time.Time) []*model.Instrument {
	out := make([]*model.Instrument, 0, len(entries))
	for _, e := range entries {
		in := &model.Instrument{
			Symbol:      e.Symbol,
			Name:        e.Name,
			Class:       e.Class,
			Sector:      e.Sector,
			Price:       e.BasePrice,
			BasePrice:   e.BasePrice,
			SessionOpen: e.BasePrice,
			Volatility:  e.Volatility,
		}
		in.PushHistory(now, e.BasePrice)
		out = append(out, in)
	}
	return out
}

// Package engine implements the stochastic price models: mean-reverting
// Gaussian equities, momentum-driven heavy-tailed crypto, the macro regime
// and sentiment feedback that modulate both, and news impact application.
package engine

import (
	"math"
	"math/rand"

	"MarketForge/internal/model"
)

// trendWindow is the capacity of the per-symbol crypto trend buffer.
const trendWindow = 5

// State is the mutable simulation state: the instrument set plus the
// per-symbol scratch arenas (drift for equities, momentum and trend history
// for crypto). It is owned by a single controller and passed to each engine
// call; scratch state is reseeded with small random values whenever the
// instrument set is (re)established and is never persisted.
type State struct {
	Instruments []*model.Instrument
	bySymbol    map[string]*model.Instrument

	Drift    map[string]float64
	Momentum map[string]float64
	Trend    map[string][]float64

	EquitySentiment *Sentiment
	CryptoSentiment *Sentiment
	Macro           model.MacroState
}

// NewState builds a State around an instrument set and seeds the scratch
// arenas.
func NewState(instruments []*model.Instrument) *State {
	s := &State{
		EquitySentiment: NewSentiment(),
		CryptoSentiment: NewSentiment(),
		Macro:           model.MacroState{InterestRate: 2.5, GDPGrowth: 2.0, Inflation: 2.0},
	}
	s.ReplaceInstruments(instruments)
	return s
}

// ReplaceInstruments swaps in a fresh instrument set and rebuilds every
// scratch arena. Used both at session start and when Valid fails.
func (s *State) ReplaceInstruments(instruments []*model.Instrument) {
	s.Instruments = instruments
	s.bySymbol = make(map[string]*model.Instrument, len(instruments))
	s.Drift = make(map[string]float64)
	s.Momentum = make(map[string]float64)
	s.Trend = make(map[string][]float64)
	for _, in := range instruments {
		s.bySymbol[in.Symbol] = in
		switch in.Class {
		case model.ClassEquity:
			s.Drift[in.Symbol] = seedBias()
		case model.ClassCrypto:
			s.Momentum[in.Symbol] = seedBias()
			s.Trend[in.Symbol] = make([]float64, 0, trendWindow)
		}
	}
}

// Lookup returns the instrument for a symbol, or nil.
func (s *State) Lookup(symbol string) *model.Instrument {
	return s.bySymbol[symbol]
}

// Valid reports whether the state is usable for a tick: a non-empty
// instrument set with finite, positive prices.
func (s *State) Valid() bool {
	if len(s.Instruments) == 0 {
		return false
	}
	for _, in := range s.Instruments {
		if in.Price <= 0 || math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
			return false
		}
	}
	return true
}

// drift returns the drift scalar for a symbol, seeding it if the symbol was
// never seen (the instrument set may have been rebuilt underneath us).
func (s *State) drift(symbol string) float64 {
	d, ok := s.Drift[symbol]
	if !ok {
		d = seedBias()
		s.Drift[symbol] = d
	}
	return d
}

func (s *State) momentum(symbol string) float64 {
	m, ok := s.Momentum[symbol]
	if !ok {
		m = seedBias()
		s.Momentum[symbol] = m
	}
	return m
}

// pushTrend records a realized percent change, evicting beyond capacity.
func (s *State) pushTrend(symbol string, pct float64) {
	buf := append(s.Trend[symbol], pct)
	if len(buf) > trendWindow {
		buf = buf[len(buf)-trendWindow:]
	}
	s.Trend[symbol] = buf
}

func seedBias() float64 {
	return (rand.Float64() - 0.5) * 0.001
}

package engine

import (
	"math/rand"
	"time"

	"MarketForge/internal/model"
	"MarketForge/internal/randvar"

	"github.com/samber/lo"
)

// Crypto model parameters. Momentum decays slower than equity drift so
// directional runs persist; noise is Lévy-distributed; the band clamp keeps
// the chaos inside [0.3, 3]× base.
const (
	cryptoMomentumStep  = 0.0005
	cryptoMomentumDecay = 0.995
	cryptoVolScale      = 0.02
	cryptoLevyAlpha     = 1.5

	cryptoBullIndex = 75.0
	cryptoBearIndex = 25.0
	cryptoBullBias  = 0.002
	cryptoBearBias  = -0.003

	cryptoTrendLookback = 3
	cryptoTrendGain     = 0.25

	cryptoBandLow  = 0.3
	cryptoBandHigh = 3.0
	cryptoEpsilon  = 0.0001
)

// TickCrypto advances every crypto asset once: persistent momentum +
// heavy-tailed noise + mood bias + trend-following, clamped to the band
// around base price. The crypto sentiment index is updated from the
// realized batch average afterward; the caller must then run the
// liquidation check.
func (s *State) TickCrypto(now time.Time) TickResult {
	res := TickResult{Prices: make(map[string]float64)}
	var moves []float64

	extreme := s.CryptoSentiment.ExtremeFactor()
	mood := 0.0
	switch {
	case s.CryptoSentiment.Index > cryptoBullIndex:
		mood = cryptoBullBias
	case s.CryptoSentiment.Index < cryptoBearIndex:
		mood = cryptoBearBias
	}

	for _, in := range s.Instruments {
		if in.Class != model.ClassCrypto {
			continue
		}
		prev := in.Price

		mom := s.momentum(in.Symbol)
		mom = (mom + (rand.Float64()-0.5)*2*cryptoMomentumStep) * cryptoMomentumDecay

		vol := in.Volatility * (1 + extreme*2) * cryptoVolScale
		noise := randvar.StableLevy(cryptoLevyAlpha) * vol

		pct := mom + noise + mood + trendBias(s.Trend[in.Symbol])
		s.pushTrend(in.Symbol, pct)

		price := clampCryptoBand(prev*(1+pct), in.BasePrice)
		price = sanitizePrice(price, prev)
		s.Momentum[in.Symbol] = mom

		in.Price = price
		in.PushHistory(now, price)
		res.Prices[in.Symbol] = price
		if prev > 0 {
			moves = append(moves, (price-prev)/prev)
		}
	}

	if len(moves) > 0 {
		res.AvgPct = lo.Sum(moves) / float64(len(moves))
		s.CryptoSentiment.Update(res.AvgPct)
	}
	return res
}

// trendBias averages the most recent realized moves into a follow-through
// term.
func trendBias(trend []float64) float64 {
	if len(trend) == 0 {
		return 0
	}
	n := cryptoTrendLookback
	if len(trend) < n {
		n = len(trend)
	}
	recent := trend[len(trend)-n:]
	return lo.Sum(recent) / float64(n) * cryptoTrendGain
}

// clampCryptoBand holds the price inside [0.3, 3]× base. Without a usable
// base price only the epsilon floor applies.
func clampCryptoBand(price, base float64) float64 {
	if base <= 0 {
		if price < cryptoEpsilon {
			return cryptoEpsilon
		}
		return price
	}
	if low := base * cryptoBandLow; price < low {
		return low
	}
	if high := base * cryptoBandHigh; price > high {
		return high
	}
	return price
}

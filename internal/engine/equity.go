package engine

import (
	"math"
	"math/rand"
	"time"

	"MarketForge/internal/model"
	"MarketForge/internal/randvar"

	"github.com/samber/lo"
)

// Equity model parameters. Drift is a slowly decaying per-symbol random
// walk; volatility widens with sentiment extremes; the breaker bounds any
// single-tick move.
const (
	equityDriftStep  = 0.0005
	equityDriftDecay = 0.99
	equityVolBase    = 0.005
	equityVolSwing   = 0.005
	equityBiasGain   = 0.001

	equityFloorFrac       = 0.2
	equityCeilingNormal   = 50.0
	equityCeilingRecessed = 1.5
	bouncebackDrift       = 0.005

	tickBreaker   = 0.12
	absPriceFloor = 0.01
	absPriceCap   = 100000.0
)

// TickResult summarizes one engine batch: the new price per symbol and the
// average realized percent move (the sentiment feedback input).
type TickResult struct {
	Prices map[string]float64
	AvgPct float64
}

// TickEquities advances every equity once: drift + sentiment-beta +
// Gaussian noise, then the floor/ceiling/absolute clamps. The equity
// sentiment index is updated from the realized batch average.
func (s *State) TickEquities(now time.Time) TickResult {
	res := TickResult{Prices: make(map[string]float64)}
	var moves []float64

	bias := s.EquitySentiment.Bias(equityBiasGain)
	extreme := s.EquitySentiment.ExtremeFactor()

	for _, in := range s.Instruments {
		if in.Class != model.ClassEquity {
			continue
		}
		prev := in.Price

		drift := s.drift(in.Symbol)
		drift = (drift + (rand.Float64()*2-1)*equityDriftStep) * equityDriftDecay

		vol := in.Volatility * (equityVolBase + extreme*equityVolSwing)
		noise := randvar.Normal() * vol

		pct := bias*sectorBeta(in.Sector) + noise + drift
		if pct > tickBreaker {
			pct = tickBreaker
		} else if pct < -tickBreaker {
			pct = -tickBreaker
		}

		price := prev * (1 + pct)

		// Hard floor at 20% of base, with a bounce-back drift bias.
		if floor := in.BasePrice * equityFloorFrac; price < floor {
			price = floor
			drift = math.Abs(drift)*0.5 + bouncebackDrift
		}

		// Ceiling collapses in a recession.
		ceilMult := equityCeilingNormal
		if s.Macro.Recession() {
			ceilMult = equityCeilingRecessed
		}
		if ceil := in.BasePrice * ceilMult; price > ceil {
			price = ceil
			drift = -(math.Abs(drift)*0.5 + bouncebackDrift)
		}

		price = sanitizePrice(price, prev)
		s.Drift[in.Symbol] = drift

		in.Price = price
		in.PushHistory(now, price)
		res.Prices[in.Symbol] = price
		if prev > 0 {
			moves = append(moves, (price-prev)/prev)
		}
	}

	if len(moves) > 0 {
		res.AvgPct = lo.Sum(moves) / float64(len(moves))
		s.EquitySentiment.Update(res.AvgPct)
	}
	return res
}

// sectorBeta scales the sentiment term: growth sectors overreact,
// defensives underreact.
func sectorBeta(sector string) float64 {
	switch sector {
	case model.SectorTech, model.SectorConsumer:
		return 1.5
	case model.SectorHealthcare, model.SectorEnergy:
		return 0.7
	default:
		return 1.0
	}
}

// sanitizePrice clamps to the absolute safety band and substitutes the
// prior price for any non-finite result. NaN is never propagated.
func sanitizePrice(price, prev float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return prev
	}
	if price < absPriceFloor {
		return absPriceFloor
	}
	if price > absPriceCap {
		return absPriceCap
	}
	return price
}

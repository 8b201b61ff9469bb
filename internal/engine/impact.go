package engine

import (
	"time"

	"MarketForge/internal/model"
)

// News impact tuning. Cross-class dampeners scale market-wide and economic
// shocks when they land on the other asset class; the aftershock gains
// convert a one-shot price jump into a lasting drift/momentum lean.
const (
	crossClassMarket   = 0.5
	crossClassEconomic = 0.8

	aftershockEquity       = 0.1
	aftershockCryptoDirect = 0.2
	aftershockCryptoSector = 0.1
)

// ApplyNews applies a fired event to the whole instrument set: an immediate
// price multiplication for every matched instrument plus a persistent
// drift/momentum shift. Prices pass through the same clamps as a tick. The
// caller must run the liquidation check once after the batch.
func (s *State) ApplyNews(ev *model.NewsEvent, now time.Time) map[string]float64 {
	changed := make(map[string]float64)
	if ev == nil {
		return changed
	}

	for _, in := range s.Instruments {
		factor := impactFactor(ev, in)
		if factor == 0 {
			continue
		}

		prev := in.Price
		price := prev * (1 + factor)
		if in.Class == model.ClassCrypto {
			price = clampCryptoBand(price, in.BasePrice)
		}
		price = sanitizePrice(price, prev)

		in.Price = price
		in.PushHistory(now, price)
		changed[in.Symbol] = price

		switch in.Class {
		case model.ClassEquity:
			s.Drift[in.Symbol] = s.drift(in.Symbol) + factor*aftershockEquity
		case model.ClassCrypto:
			gain := aftershockCryptoSector
			if ev.Type == model.NewsCompany && ev.Symbol == in.Symbol {
				gain = aftershockCryptoDirect
			}
			s.Momentum[in.Symbol] = s.momentum(in.Symbol) + factor*gain
		}
	}
	return changed
}

// impactFactor resolves how strongly an event hits one instrument.
func impactFactor(ev *model.NewsEvent, in *model.Instrument) float64 {
	switch ev.Type {
	case model.NewsCompany:
		if ev.Symbol == in.Symbol {
			return ev.Impact
		}
	case model.NewsSector:
		if ev.Sector != "" && ev.Sector == in.Sector {
			return ev.Impact
		}
	case model.NewsMarket:
		if ev.Class == in.Class {
			return ev.Impact
		}
		return ev.Impact * crossClassMarket
	case model.NewsEconomic:
		if ev.Class == in.Class {
			return ev.Impact
		}
		return ev.Impact * crossClassEconomic
	}
	return 0
}

// Package market owns the simulation state and serializes every mutation
// behind one lock: the four schedules never interleave a partial batch, and
// external callers only ever see post-tick state. All reads return copies.
package market

import (
	"errors"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"MarketForge/internal/catalog"
	"MarketForge/internal/engine"
	"MarketForge/internal/model"
	"MarketForge/internal/news"
	"MarketForge/internal/portfolio"

	"github.com/shopspring/decimal"
)

// ErrUnknownSymbol rejects operations against instruments not in the set.
var ErrUnknownSymbol = errors.New("unknown symbol")

// TickReport summarizes one scheduled engine batch for the caller.
type TickReport struct {
	Class        model.AssetClass
	AvgPct       float64
	Sentiment    float64
	Prices       map[string]float64
	Liquidations []model.LiquidationEvent
}

// NewsReport carries a fired event plus the liquidations its impact caused.
type NewsReport struct {
	Event        *model.NewsEvent
	Liquidations []model.LiquidationEvent
}

// Controller wires the engines, news generators, and portfolio book around
// a single instrument set.
type Controller struct {
	mu      sync.Mutex
	entries []catalog.Entry
	state   *engine.State
	book    *portfolio.Book

	equityNews     *news.Generator
	cryptoNews     *news.Generator
	lastEquityNews time.Time
	lastCryptoNews time.Time
}

// New seeds the simulation from catalog entries.
func New(entries []catalog.Entry, book *portfolio.Book) *Controller {
	return &Controller{
		entries:    entries,
		state:      engine.NewState(catalog.Instruments(entries, time.Now())),
		book:       book,
		equityNews: news.NewEquityGenerator(entries),
		cryptoNews: news.NewCryptoGenerator(entries),
	}
}

// SetNewsTuning applies configured news knobs to both generators. The
// minimum interval and fire probability are independent parameters.
func (c *Controller) SetNewsTuning(equityInterval, cryptoInterval time.Duration, fireProbability float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.equityNews.MinInterval = equityInterval
	c.cryptoNews.MinInterval = cryptoInterval
	c.equityNews.FireProbability = fireProbability
	c.cryptoNews.FireProbability = fireProbability
}

// TickEquities runs one equity batch and the mandatory liquidation check.
func (c *Controller) TickEquities() TickReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureValid()

	res := c.state.TickEquities(time.Now())
	return TickReport{
		Class:        model.ClassEquity,
		AvgPct:       res.AvgPct,
		Sentiment:    c.state.EquitySentiment.Index,
		Prices:       res.Prices,
		Liquidations: c.book.CheckLiquidations(res.Prices),
	}
}

// TickCrypto runs one crypto batch and the mandatory liquidation check.
func (c *Controller) TickCrypto() TickReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureValid()

	res := c.state.TickCrypto(time.Now())
	return TickReport{
		Class:        model.ClassCrypto,
		AvgPct:       res.AvgPct,
		Sentiment:    c.state.CryptoSentiment.Index,
		Prices:       res.Prices,
		Liquidations: c.book.CheckLiquidations(res.Prices),
	}
}

// AdvanceMacro applies one macro regime step and returns the new gauges.
func (c *Controller) AdvanceMacro() model.Gauges {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.AdvanceMacro()
	return c.gauges()
}

// PollNews checks both class generators, staler first, and fires at most
// one event per poll. The impact is applied to the whole instrument set
// before the liquidation check runs.
func (c *Controller) PollNews() NewsReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureValid()

	type slot struct {
		gen  *news.Generator
		last *time.Time
	}
	slots := []slot{
		{c.equityNews, &c.lastEquityNews},
		{c.cryptoNews, &c.lastCryptoNews},
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].last.Before(*slots[j].last)
	})

	for _, s := range slots {
		if !s.gen.ShouldFire(*s.last) {
			continue
		}
		ev := s.gen.Generate(c.state.Instruments)
		if ev == nil {
			continue
		}
		*s.last = ev.Time

		changed := c.state.ApplyNews(ev, ev.Time)
		return NewsReport{
			Event:        ev,
			Liquidations: c.book.CheckLiquidations(changed),
		}
	}
	return NewsReport{}
}

// NewsDue reports whether the minimum interval for a class has elapsed
// since the given last-fired timestamp; it never consumes randomness.
func (c *Controller) NewsDue(class model.AssetClass, lastFired time.Time) bool {
	if class == model.ClassCrypto {
		return c.cryptoNews.Due(lastFired)
	}
	return c.equityNews.Due(lastFired)
}

// Snapshot returns a deep copy of the current instrument list.
func (c *Controller) Snapshot() []model.Instrument {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Instrument, 0, len(c.state.Instruments))
	for _, in := range c.state.Instruments {
		cp := *in
		cp.History = append([]model.PricePoint(nil), in.History...)
		out = append(out, cp)
	}
	return out
}

// ApplyPrices sets a batch of external prices atomically: history append,
// eviction, and one liquidation check over the changed set. Unknown symbols
// and non-finite or non-positive values are skipped.
func (c *Controller) ApplyPrices(prices map[string]float64) []model.LiquidationEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureValid()

	now := time.Now()
	changed := make(map[string]float64, len(prices))
	for sym, price := range prices {
		in := c.state.Lookup(sym)
		if in == nil || price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			continue
		}
		in.Price = price
		in.PushHistory(now, price)
		changed[sym] = price
	}
	return c.book.CheckLiquidations(changed)
}

// UpdatePrice is the single-instrument variant of ApplyPrices, for external
// one-off shocks.
func (c *Controller) UpdatePrice(symbol string, price float64) ([]model.LiquidationEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureValid()

	in := c.state.Lookup(symbol)
	if in == nil {
		return nil, ErrUnknownSymbol
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, portfolio.ErrInvalidOrder
	}
	in.Price = price
	in.PushHistory(time.Now(), price)
	return c.book.CheckLiquidations(map[string]float64{symbol: price}), nil
}

// Buy opens or averages a position at the current simulated price and
// returns the fill price.
func (c *Controller) Buy(symbol string, qty float64, leverage int) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	in := c.state.Lookup(symbol)
	if in == nil {
		return 0, ErrUnknownSymbol
	}
	if err := c.book.Buy(symbol, qty, in.Price, leverage); err != nil {
		return 0, err
	}
	return in.Price, nil
}

// Sell closes part or all of a position at the current simulated price.
// It returns the proceeds credited and the fill price.
func (c *Controller) Sell(symbol string, qty float64) (decimal.Decimal, float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	in := c.state.Lookup(symbol)
	if in == nil {
		return decimal.Zero, 0, ErrUnknownSymbol
	}
	proceeds, err := c.book.Sell(symbol, qty, in.Price)
	if err != nil {
		return decimal.Zero, 0, err
	}
	return proceeds, in.Price, nil
}

// Holdings returns a copy of all open positions.
func (c *Controller) Holdings() map[string]model.LeveragedPosition {
	return c.book.Holdings()
}

// Cash returns the available cash balance.
func (c *Controller) Cash() decimal.Decimal {
	return c.book.Cash()
}

// Gauges returns the macro and sentiment readout, for display only.
func (c *Controller) Gauges() model.Gauges {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gauges()
}

func (c *Controller) gauges() model.Gauges {
	return model.Gauges{
		Macro:           c.state.Macro,
		Phase:           c.state.Macro.Phase(),
		EquitySentiment: c.state.EquitySentiment.Index,
		CryptoSentiment: c.state.CryptoSentiment.Index,
	}
}

// ensureValid reseeds the instrument set from the catalog when the state
// invariant fails. Self-healing, never fatal.
func (c *Controller) ensureValid() {
	if c.state.Valid() {
		return
	}
	log.Println("[WARN] instrument state invalid, reseeding from catalog")
	c.state.ReplaceInstruments(catalog.Instruments(c.entries, time.Now()))
}

// Package portfolio tracks the player's cash and leveraged positions and
// owns the liquidation check. Rejected trades leave no state behind.
package portfolio

import (
	"errors"
	"log"
	"sync"
	"time"

	"MarketForge/internal/model"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrder         = errors.New("order quantity and price must be positive")
	ErrInvalidLeverage      = errors.New("leverage must be one of 1, 2, 5, 10")
	ErrInsufficientCash     = errors.New("insufficient cash for margin")
	ErrInsufficientHoldings = errors.New("sell quantity exceeds holdings")
	ErrLeverageMismatch     = errors.New("position already open at a different leverage")
)

// Book handles portfolio operations with concurrency safety, persisting to
// a JSON state file after every mutation.
type Book struct {
	mu       sync.Mutex
	state    *State
	filePath string
}

// NewBook creates a Book, loading or initializing state from disk.
func NewBook(filePath string, startingCash float64) (*Book, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	if state.Cash.IsZero() && len(state.Positions) == 0 && state.UpdatedAt.IsZero() {
		state.Cash = decimal.NewFromFloat(startingCash)
	}

	b := &Book{state: state, filePath: filePath}
	if err := b.save(); err != nil {
		return nil, err
	}
	return b, nil
}

// Cash returns the available cash balance.
func (b *Book) Cash() decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Cash
}

// Holdings returns a copy of all open positions.
func (b *Book) Holdings() map[string]model.LeveragedPosition {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]model.LeveragedPosition, len(b.state.Positions))
	for sym, p := range b.state.Positions {
		out[sym] = *p
	}
	return out
}

// Buy opens or averages into a long position at the given price. Margin of
// qty×price/leverage is deducted from cash. The liquidation price of a
// leveraged position is entry × (1 − 1/leverage) and only ever ratchets up
// when averaging.
func (b *Book) Buy(symbol string, qty, price float64, leverage int) error {
	if qty <= 0 || price <= 0 {
		return ErrInvalidOrder
	}
	if !allowedLeverage(leverage) {
		return ErrInvalidLeverage
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	margin := decimal.NewFromFloat(qty * price / float64(leverage))
	if b.state.Cash.LessThan(margin) {
		return ErrInsufficientCash
	}

	p, ok := b.state.Positions[symbol]
	if ok && p.Leverage != leverage {
		return ErrLeverageMismatch
	}

	b.state.Cash = b.state.Cash.Sub(margin)

	if !ok {
		p = &model.LeveragedPosition{
			Symbol:      symbol,
			Quantity:    qty,
			AverageCost: price,
			Leverage:    leverage,
			EntryPrice:  price,
			OpenedAt:    time.Now(),
		}
		if leverage > 1 {
			p.LiquidationPrice = liquidationPrice(price, leverage)
		}
		b.state.Positions[symbol] = p
	} else {
		total := p.Quantity + qty
		p.AverageCost = (p.AverageCost*p.Quantity + price*qty) / total
		p.Quantity = total
		p.EntryPrice = price
		if leverage > 1 {
			if lp := liquidationPrice(price, leverage); lp > p.LiquidationPrice {
				p.LiquidationPrice = lp
			}
		}
	}

	if err := b.save(); err != nil {
		log.Printf("[ERROR] save portfolio state: %v", err)
	}
	return nil
}

// Sell closes part or all of a position at the given price. Proceeds are
// the margin share plus P&L, floored at zero; the trade is rejected whole
// if qty exceeds the holding.
func (b *Book) Sell(symbol string, qty, price float64) (decimal.Decimal, error) {
	if qty <= 0 || price <= 0 {
		return decimal.Zero, ErrInvalidOrder
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.state.Positions[symbol]
	if !ok || qty > p.Quantity+1e-9 {
		return decimal.Zero, ErrInsufficientHoldings
	}
	if qty > p.Quantity {
		qty = p.Quantity
	}

	marginShare := qty * p.AverageCost / float64(p.Leverage)
	pnl := (price - p.AverageCost) * qty
	value := marginShare + pnl
	if value < 0 {
		value = 0
	}
	proceeds := decimal.NewFromFloat(value)
	b.state.Cash = b.state.Cash.Add(proceeds)

	p.Quantity -= qty
	if p.Quantity <= 1e-9 {
		delete(b.state.Positions, symbol)
	}

	if err := b.save(); err != nil {
		log.Printf("[ERROR] save portfolio state: %v", err)
	}
	return proceeds, nil
}

// CheckLiquidations scans leveraged positions against current prices and
// forcibly closes any whose price has crossed its threshold. All margin is
// forfeited; no proceeds are returned. Must run after every price mutation
// that could cross a threshold.
func (b *Book) CheckLiquidations(prices map[string]float64) []model.LiquidationEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	var events []model.LiquidationEvent
	for sym, p := range b.state.Positions {
		if p.Leverage <= 1 || p.LiquidationPrice <= 0 {
			continue
		}
		price, ok := prices[sym]
		if !ok || price > p.LiquidationPrice {
			continue
		}
		events = append(events, model.LiquidationEvent{
			Symbol:     sym,
			Quantity:   p.Quantity,
			Price:      price,
			MarginLost: p.Margin(),
			Leverage:   p.Leverage,
			Time:       time.Now(),
		})
		delete(b.state.Positions, sym)
	}

	if len(events) > 0 {
		if err := b.save(); err != nil {
			log.Printf("[ERROR] save portfolio state after liquidation: %v", err)
		}
	}
	return events
}

func (b *Book) save() error {
	return SaveState(b.filePath, b.state)
}

func allowedLeverage(leverage int) bool {
	for _, l := range model.AllowedLeverage {
		if leverage == l {
			return true
		}
	}
	return false
}

func liquidationPrice(entry float64, leverage int) float64 {
	return entry * (1 - 1/float64(leverage))
}

package portfolio

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestBook(t *testing.T, cash float64) *Book {
	t.Helper()
	b, err := NewBook(filepath.Join(t.TempDir(), "portfolio.json"), cash)
	if err != nil {
		t.Fatalf("new book: %v", err)
	}
	return b
}

func TestBuy_SetsLiquidationPrice(t *testing.T) {
	b := newTestBook(t, 10000)
	if err := b.Buy("BTC", 1, 1000, 5); err != nil {
		t.Fatalf("buy: %v", err)
	}

	p := b.Holdings()["BTC"]
	want := 1000 * (1 - 1.0/5)
	if math.Abs(p.LiquidationPrice-want) > 1e-9 {
		t.Errorf("liquidation price %.2f, want %.2f", p.LiquidationPrice, want)
	}
	// Margin 200 deducted.
	if !b.Cash().Equal(decimal.NewFromInt(9800)) {
		t.Errorf("cash %s, want 9800", b.Cash())
	}
}

func TestBuy_UnleveragedHasNoLiquidationPrice(t *testing.T) {
	b := newTestBook(t, 10000)
	if err := b.Buy("NOVA", 10, 100, 1); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if lp := b.Holdings()["NOVA"].LiquidationPrice; lp != 0 {
		t.Errorf("unexpected liquidation price %.2f on 1x position", lp)
	}
}

func TestBuy_Rejections(t *testing.T) {
	b := newTestBook(t, 100)

	if err := b.Buy("X", 1, 1000, 1); !errors.Is(err, ErrInsufficientCash) {
		t.Errorf("want ErrInsufficientCash, got %v", err)
	}
	if err := b.Buy("X", 1, 10, 3); !errors.Is(err, ErrInvalidLeverage) {
		t.Errorf("want ErrInvalidLeverage, got %v", err)
	}
	if err := b.Buy("X", -1, 10, 1); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("want ErrInvalidOrder, got %v", err)
	}

	// Rejected trades must not touch state.
	if !b.Cash().Equal(decimal.NewFromInt(100)) {
		t.Errorf("cash %s mutated by rejected trades", b.Cash())
	}
	if len(b.Holdings()) != 0 {
		t.Error("holdings mutated by rejected trades")
	}
}

func TestBuy_AveragingRatchetsLiquidationPrice(t *testing.T) {
	b := newTestBook(t, 100000)
	if err := b.Buy("BTC", 1, 1000, 2); err != nil {
		t.Fatalf("buy 1: %v", err)
	}
	// Averaging up at a higher entry: the threshold takes the max.
	if err := b.Buy("BTC", 1, 2000, 2); err != nil {
		t.Fatalf("buy 2: %v", err)
	}

	p := b.Holdings()["BTC"]
	if math.Abs(p.AverageCost-1500) > 1e-9 {
		t.Errorf("average cost %.2f, want 1500", p.AverageCost)
	}
	if math.Abs(p.LiquidationPrice-1000) > 1e-9 {
		t.Errorf("liquidation price %.2f, want 1000 (max of 500 and 1000)", p.LiquidationPrice)
	}

	if err := b.Buy("BTC", 1, 900, 5); !errors.Is(err, ErrLeverageMismatch) {
		t.Errorf("want ErrLeverageMismatch, got %v", err)
	}
}

func TestSell_ProceedsAndRejection(t *testing.T) {
	b := newTestBook(t, 10000)
	if err := b.Buy("NOVA", 10, 100, 2); err != nil { // margin 500
		t.Fatalf("buy: %v", err)
	}

	if _, err := b.Sell("NOVA", 20, 110); !errors.Is(err, ErrInsufficientHoldings) {
		t.Errorf("want ErrInsufficientHoldings, got %v", err)
	}
	if _, err := b.Sell("GHOST", 1, 110); !errors.Is(err, ErrInsufficientHoldings) {
		t.Errorf("want ErrInsufficientHoldings for unknown symbol, got %v", err)
	}

	// Sell half at a profit: margin share 250 + pnl 50.
	proceeds, err := b.Sell("NOVA", 5, 110)
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if !proceeds.Equal(decimal.NewFromInt(300)) {
		t.Errorf("proceeds %s, want 300", proceeds)
	}

	// Sell the rest: position is gone.
	if _, err := b.Sell("NOVA", 5, 110); err != nil {
		t.Fatalf("sell rest: %v", err)
	}
	if len(b.Holdings()) != 0 {
		t.Error("position should be closed out")
	}
}

func TestCheckLiquidations_RemovesCrossedPositions(t *testing.T) {
	b := newTestBook(t, 10000)
	if err := b.Buy("BTC", 1, 1000, 5); err != nil { // liq at 800
		t.Fatalf("buy: %v", err)
	}
	if err := b.Buy("NOVA", 10, 100, 1); err != nil {
		t.Fatalf("buy: %v", err)
	}

	// Above threshold: nothing happens.
	if evs := b.CheckLiquidations(map[string]float64{"BTC": 900}); len(evs) != 0 {
		t.Fatalf("unexpected liquidation above threshold: %+v", evs)
	}

	// At threshold: position is closed whole, margin forfeited.
	evs := b.CheckLiquidations(map[string]float64{"BTC": 800, "NOVA": 10})
	if len(evs) != 1 {
		t.Fatalf("expected 1 liquidation, got %d", len(evs))
	}
	ev := evs[0]
	if ev.Symbol != "BTC" || math.Abs(ev.MarginLost-200) > 1e-9 {
		t.Errorf("event %+v, want BTC with margin 200", ev)
	}
	if _, ok := b.Holdings()["BTC"]; ok {
		t.Error("liquidated position still present")
	}
	// 1x positions never liquidate regardless of price.
	if _, ok := b.Holdings()["NOVA"]; !ok {
		t.Error("unleveraged position wrongly removed")
	}
	// No proceeds returned.
	if !b.Cash().Equal(decimal.NewFromInt(8800)) {
		t.Errorf("cash %s, want 8800 (margin forfeited)", b.Cash())
	}
}

func TestStatePersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	b, err := NewBook(path, 5000)
	if err != nil {
		t.Fatalf("new book: %v", err)
	}
	if err := b.Buy("ETH", 2, 500, 2); err != nil {
		t.Fatalf("buy: %v", err)
	}

	b2, err := NewBook(path, 99999) // starting cash ignored on reload
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !b2.Cash().Equal(b.Cash()) {
		t.Errorf("reloaded cash %s != %s", b2.Cash(), b.Cash())
	}
	if _, ok := b2.Holdings()["ETH"]; !ok {
		t.Error("reloaded book lost the ETH position")
	}
}

package stats

import (
	"math"
	"testing"
	"time"

	"MarketForge/internal/model"
)

func history(values ...float64) []model.PricePoint {
	out := make([]model.PricePoint, len(values))
	base := time.Now()
	for i, v := range values {
		out[i] = model.PricePoint{Time: base.Add(time.Duration(i) * time.Second), Value: v}
	}
	return out
}

func TestSMA(t *testing.T) {
	got, err := SMA([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("sma: %v", err)
	}
	if got != 4 {
		t.Errorf("SMA = %v, want 4", got)
	}
	if _, err := SMA([]float64{1, 2}, 3); err == nil {
		t.Error("expected error for short series")
	}
	if _, err := SMA(nil, 0); err == nil {
		t.Error("expected error for zero period")
	}
}

func TestRSI_Bounds(t *testing.T) {
	// Monotonic rally: RSI pins at 100.
	up := history(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	got, err := RSI(up, 14)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	if got != 100 {
		t.Errorf("RSI of pure rally = %v, want 100", got)
	}

	// Monotonic slide: RSI collapses toward 0.
	down := history(16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
	got, err = RSI(down, 14)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	if got > 1 {
		t.Errorf("RSI of pure slide = %v, want ~0", got)
	}

	// Insufficient data: neutral default.
	got, err = RSI(history(1, 2), 14)
	if err != nil || got != 50 {
		t.Errorf("RSI with short history = (%v, %v), want (50, nil)", got, err)
	}
}

func TestRangeAndPosition(t *testing.T) {
	h := history(10, 30, 20, 25)
	high, low, err := Range(h, 10)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if high != 30 || low != 10 {
		t.Errorf("range = (%v, %v), want (30, 10)", high, low)
	}

	if pos := RangePosition(25, high, low); math.Abs(pos-0.75) > 1e-12 {
		t.Errorf("position = %v, want 0.75", pos)
	}
	if pos := RangePosition(5, high, low); pos != 0 {
		t.Errorf("position below range = %v, want 0", pos)
	}
	if pos := RangePosition(7, 7, 7); pos != 0.5 {
		t.Errorf("degenerate range position = %v, want 0.5", pos)
	}
}

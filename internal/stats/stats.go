// Package stats derives display indicators from simulated price history.
package stats

import (
	"errors"

	"MarketForge/internal/model"

	"github.com/samber/lo"
)

// SMA computes the simple moving average of the given prices over the
// specified period.
func SMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	window := prices[len(prices)-period:]
	return lo.Sum(window) / float64(period), nil
}

// RSI computes the Wilder-smoothed RSI over the recorded history.
// Requires at least period+1 samples. Returns 50.0 if data is insufficient.
func RSI(history []model.PricePoint, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(history) < period+1 {
		return 50.0, nil // default when data insufficient
	}

	values := Values(history)

	// Initial average gain/loss over the first `period` changes
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Wilder smoothing for remaining samples
	for i := period + 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}

// Range returns the high and low over the most recent n samples.
func Range(history []model.PricePoint, n int) (high, low float64, err error) {
	if len(history) == 0 {
		return 0, 0, errors.New("no history provided")
	}
	start := len(history) - n
	if start < 0 {
		start = 0
	}
	window := Values(history[start:])
	return lo.Max(window), lo.Min(window), nil
}

// RangePosition returns where price sits within [low, high], clamped 0~1.
func RangePosition(price, high, low float64) float64 {
	if high <= low {
		return 0.5
	}
	pos := (price - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos
}

// Values extracts the raw price series from history samples.
func Values(history []model.PricePoint) []float64 {
	return lo.Map(history, func(p model.PricePoint, _ int) float64 { return p.Value })
}

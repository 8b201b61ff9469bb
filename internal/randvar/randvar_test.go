package randvar

import (
	"math"
	"testing"
)

func TestGamma_KnownValues(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0.5, math.Sqrt(math.Pi)},
		{1.0, 1.0},
		{2.0, 1.0},
		{2.5, 1.3293403881791370},
		{5.0, 24.0},
	}
	for _, tt := range tests {
		got := Gamma(tt.x)
		if math.Abs(got-tt.want) > 1e-9*math.Max(1, tt.want) {
			t.Errorf("Gamma(%.2f) = %.12f, want %.12f", tt.x, got, tt.want)
		}
	}
}

func TestNormal_MeanAndVariance(t *testing.T) {
	const n = 200000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x := Normal()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("non-finite sample: %v", x)
		}
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	if math.Abs(mean) > 0.02 {
		t.Errorf("mean = %.4f, want ~0", mean)
	}
	if math.Abs(variance-1) > 0.05 {
		t.Errorf("variance = %.4f, want ~1", variance)
	}
}

// The Lévy sampler must be heavy-tailed: its empirical excess kurtosis
// should dwarf the Gaussian's (which is ~0).
func TestStableLevy_HeavyTails(t *testing.T) {
	const n = 50000
	samples := make([]float64, n)
	var sum float64
	for i := range samples {
		x := StableLevy(1.5)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("non-finite sample: %v", x)
		}
		samples[i] = x
		sum += x
	}
	mean := sum / n

	var m2, m4 float64
	for _, x := range samples {
		d := x - mean
		m2 += d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m4 /= n
	kurtosis := m4/(m2*m2) - 3

	if kurtosis < 5 {
		t.Errorf("excess kurtosis = %.2f, expected heavy tails (>> 0)", kurtosis)
	}
}

func TestStableLevy_ProducesLargeExcursions(t *testing.T) {
	const n = 20000
	levyBig, gaussBig := 0, 0
	for i := 0; i < n; i++ {
		if math.Abs(StableLevy(1.5)) > 4 {
			levyBig++
		}
		if math.Abs(Normal()) > 4 {
			gaussBig++
		}
	}
	if levyBig <= gaussBig {
		t.Errorf("|x|>4 counts: levy=%d gauss=%d, expected levy to dominate", levyBig, gaussBig)
	}
}

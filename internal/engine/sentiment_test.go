package engine

import (
	"math"
	"testing"
)

func TestSentiment_Clamps(t *testing.T) {
	s := NewSentiment()
	for i := 0; i < 100; i++ {
		s.Update(0.5) // +50 points per update pre-blend
		if s.Index < 0 || s.Index > 100 {
			t.Fatalf("index %.2f outside [0,100]", s.Index)
		}
	}
	if s.Index < 99 {
		t.Errorf("index %.2f, expected pinned near 100 after sustained rallies", s.Index)
	}

	for i := 0; i < 100; i++ {
		s.Update(-0.5)
		if s.Index < 0 || s.Index > 100 {
			t.Fatalf("index %.2f outside [0,100]", s.Index)
		}
	}
}

func TestSentiment_RevertsToNeutral(t *testing.T) {
	s := &Sentiment{Index: 80}
	for i := 0; i < 500; i++ {
		s.Update(0)
	}
	if math.Abs(s.Index-50) > 1 {
		t.Errorf("index %.2f did not revert to neutral", s.Index)
	}
}

func TestSentiment_Derived(t *testing.T) {
	tests := []struct {
		index       float64
		wantBias    float64
		wantExtreme float64
	}{
		{50, 0, 0},
		{100, 0.001, 1},
		{0, -0.001, 1},
		{75, 0.0005, 0.5},
		{25, -0.0005, 0.5},
	}
	for _, tt := range tests {
		s := &Sentiment{Index: tt.index}
		if got := s.Bias(0.001); math.Abs(got-tt.wantBias) > 1e-12 {
			t.Errorf("Bias at %.0f = %v, want %v", tt.index, got, tt.wantBias)
		}
		if got := s.ExtremeFactor(); math.Abs(got-tt.wantExtreme) > 1e-12 {
			t.Errorf("ExtremeFactor at %.0f = %v, want %v", tt.index, got, tt.wantExtreme)
		}
	}
}

package engine

// Sentiment is a fear-greed index on [0,100], 50 neutral. Each asset class
// carries its own instance; realized price moves feed it every tick and it
// mean-reverts toward neutral.
type Sentiment struct {
	Index float64
}

const (
	sentimentNeutral = 50.0
	sentimentScale   = 100.0
	sentimentRevert  = 0.99
)

// NewSentiment starts at neutral.
func NewSentiment() *Sentiment {
	return &Sentiment{Index: sentimentNeutral}
}

// Update folds the average realized percent change across the class into
// the index: scaled feedback, 99/1 blend toward neutral, clamp to [0,100].
func (s *Sentiment) Update(avgPct float64) {
	next := s.Index + avgPct*sentimentScale
	next = next*sentimentRevert + sentimentNeutral*(1-sentimentRevert)
	if next < 0 {
		next = 0
	} else if next > 100 {
		next = 100
	}
	s.Index = next
}

// Bias returns the signed directional term, magnitude k at the extremes.
func (s *Sentiment) Bias(k float64) float64 {
	return (s.Index - sentimentNeutral) / sentimentNeutral * k
}

// ExtremeFactor is 0 at neutral and 1 at either extreme; both panic and
// euphoria scale volatility up.
func (s *Sentiment) ExtremeFactor() float64 {
	f := (s.Index - sentimentNeutral) / sentimentNeutral
	if f < 0 {
		f = -f
	}
	return f
}

// Package randvar provides the numeric samplers behind both price engines:
// a Box-Muller standard normal and a Mantegna stable-Lévy draw whose scale
// comes from a Lanczos Gamma approximation.
package randvar

import (
	"math"
	"math/rand"
)

// Normal returns one sample from a zero-mean, unit-variance Gaussian via
// the Box-Muller transform. Uniform draws of exactly 0 are resampled so
// the log stays finite.
func Normal() float64 {
	u1 := rand.Float64()
	for u1 == 0 {
		u1 = rand.Float64()
	}
	u2 := rand.Float64()
	for u2 == 0 {
		u2 = rand.Float64()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// StableLevy returns one sample from a symmetric alpha-stable distribution
// via Mantegna's algorithm. The price engines use alpha=1.5; large
// excursions are markedly more frequent than under a Gaussian.
func StableLevy(alpha float64) float64 {
	num := Gamma(1+alpha) * math.Sin(math.Pi*alpha/2)
	den := Gamma((1+alpha)/2) * alpha * math.Pow(2, (alpha-1)/2)
	sigma := math.Pow(num/den, 1/alpha)

	u := Normal() * sigma
	v := Normal()
	for v == 0 {
		v = Normal()
	}
	return u / math.Pow(math.Abs(v), 1/alpha)
}

// Lanczos coefficients (g=7, n=9).
var lanczos = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// Gamma evaluates the Gamma function via the Lanczos approximation, using
// the reflection formula for x < 0.5.
func Gamma(x float64) float64 {
	if x < 0.5 {
		// Γ(x)·Γ(1−x) = π / sin(πx)
		return math.Pi / (math.Sin(math.Pi*x) * Gamma(1-x))
	}
	x--
	a := lanczos[0]
	t := x + 7.5
	for i := 1; i < len(lanczos); i++ {
		a += lanczos[i] / (x + float64(i))
	}
	return math.Sqrt(2*math.Pi) * math.Pow(t, x+0.5) * math.Exp(-t) * a
}

// Package winprob maps a pair of true ability ranks to the probability
// that the first side wins.
package winprob

import (
	"fmt"

	"github.com/atgjack/prob"
)

// Model computes the chance that the team holding trueA beats the team
// holding trueB. Implementations must be pure and complementary:
// WinProbability(a, b) + WinProbability(b, a) == 1.
type Model interface {
	// WinProbability returns P(side A wins) for true ranks a and b.
	WinProbability(trueA, trueB int) float64
}

// Binned is the committee model's step function over rank gaps.
type Binned struct{}

// NewBinned returns the binned model.
func NewBinned() Binned { return Binned{} }

// WinProbability applies the fixed gap bins. diff = trueB - trueA, so a
// positive diff means side A is the better team.
func (Binned) WinProbability(trueA, trueB int) float64 {
	diff := trueB - trueA
	abs := diff
	if abs < 0 {
		abs = -abs
	}

	var base float64
	switch {
	case abs <= 5:
		base = 0.50
	case abs <= 10:
		base = 0.65
	case abs <= 15:
		base = 0.75
	case abs <= 25:
		base = 0.85
	case abs <= 50:
		base = 0.95
	case abs <= 100:
		base = 0.98
	default:
		base = 0.99
	}

	if diff > 0 {
		return base
	}
	return 1 - base
}

// Gaussian smooths the gap-to-probability mapping with a normal CDF:
// P(A wins) = Phi(diff / sigma). Larger sigma flattens the curve.
type Gaussian struct {
	dist prob.Normal
}

// DefaultSigma roughly tracks the binned model's slope through the
// middle bins.
const DefaultSigma = 18.0

// NewGaussian builds a gaussian model with the given spread.
func NewGaussian(sigma float64) (Gaussian, error) {
	if sigma <= 0 {
		return Gaussian{}, fmt.Errorf("%w: sigma %f", ErrInvalidSigma, sigma)
	}
	return Gaussian{dist: prob.Normal{Mu: 0, Sigma: sigma}}, nil
}

// WinProbability returns Phi(trueB - trueA) under the configured spread.
func (g Gaussian) WinProbability(trueA, trueB int) float64 {
	return g.dist.Cdf(float64(trueB - trueA))
}

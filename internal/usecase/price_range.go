package usecase

import (
	"math"

	"github.com/pricelens/backend/internal/domain"
)

const (
	// DefaultTolerancePercent is applied when the caller supplies no tolerance
	DefaultTolerancePercent = 10.0

	// noTargetCeiling is the finite upper bound used when no target price
	// is supplied, so every positive price is in range.
	noTargetCeiling = 99999.0

	// outOfRangeScore effectively disqualifies out-of-window candidates
	// from score comparisons.
	outOfRangeScore = 1e9
)

// PriceWindow is the acceptance window for candidate prices, inclusive on
// both bounds.
type PriceWindow struct {
	Min float64
	Max float64
}

// Window computes the acceptance window for a target price and tolerance.
// Tolerance is a percentage; negative values fall back to the default.
// Without a target the window is [0, 99999] and every positive price passes.
func Window(targetPrice *float64, tolerancePercent float64) PriceWindow {
	if targetPrice == nil || *targetPrice <= 0 {
		return PriceWindow{Min: 0, Max: noTargetCeiling}
	}

	if tolerancePercent < 0 {
		tolerancePercent = DefaultTolerancePercent
	}

	target := *targetPrice
	fraction := tolerancePercent / 100
	min := target * (1 - fraction)
	if min < 0 {
		min = 0
	}

	return PriceWindow{Min: min, Max: target * (1 + fraction)}
}

// InRange reports whether a price falls inside the window
func InRange(price float64, window PriceWindow) bool {
	return price >= window.Min && price <= window.Max
}

// ScorePrice computes the ranking key for one price; smaller is better.
// Policy: with a target, in-range prices score their absolute distance
// from the target and out-of-range prices score a disqualifying constant;
// without a target the price itself is the score, so cheaper wins.
func ScorePrice(price float64, targetPrice *float64, window PriceWindow) float64 {
	if targetPrice != nil && *targetPrice > 0 {
		if !InRange(price, window) {
			return outOfRangeScore
		}
		return math.Abs(price - *targetPrice)
	}

	return price
}

// EvaluateCandidates recomputes the derived InRange and Score fields for
// every candidate against the given window. This is the only place those
// fields are mutated.
func EvaluateCandidates(candidates []*domain.Candidate, targetPrice *float64, window PriceWindow) {
	for _, c := range candidates {
		c.InRange = InRange(c.Price, window)
		c.Score = ScorePrice(c.Price, targetPrice, window)
	}
}

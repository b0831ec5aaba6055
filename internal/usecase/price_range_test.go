package usecase

import (
	"testing"

	"github.com/pricelens/backend/internal/domain"
)

func TestWindow(t *testing.T) {
	t.Run("computes window from target and tolerance", func(t *testing.T) {
		target := 130.0
		w := Window(&target, 10)
		if w.Min != 117 {
			t.Errorf("Min = %v, want 117", w.Min)
		}
		if w.Max != 143 {
			t.Errorf("Max = %v, want 143", w.Max)
		}
	})

	t.Run("no target yields a permissive window", func(t *testing.T) {
		w := Window(nil, 10)
		if w.Min != 0 {
			t.Errorf("Min = %v, want 0", w.Min)
		}
		if w.Max != 99999 {
			t.Errorf("Max = %v, want 99999", w.Max)
		}
	})

	t.Run("zero tolerance is an exact window", func(t *testing.T) {
		target := 50.0
		w := Window(&target, 0)
		if w.Min != 50 || w.Max != 50 {
			t.Errorf("window = [%v, %v], want [50, 50]", w.Min, w.Max)
		}
	})

	t.Run("negative tolerance falls back to default", func(t *testing.T) {
		target := 100.0
		w := Window(&target, -5)
		if w.Min != 90 || w.Max != 110 {
			t.Errorf("window = [%v, %v], want [90, 110]", w.Min, w.Max)
		}
	})

	t.Run("window floor never goes below zero", func(t *testing.T) {
		target := 10.0
		w := Window(&target, 200)
		if w.Min != 0 {
			t.Errorf("Min = %v, want 0", w.Min)
		}
	})
}

func TestInRange(t *testing.T) {
	target := 100.0
	tests := []struct {
		price            float64
		tolerancePercent float64
		want             bool
	}{
		{price: 95, tolerancePercent: 5, want: true},
		{price: 105, tolerancePercent: 5, want: true},
		{price: 94.99, tolerancePercent: 5, want: false},
		{price: 105.01, tolerancePercent: 5, want: false},
		{price: 100, tolerancePercent: 0, want: true},
		{price: 80, tolerancePercent: 20, want: true},
		{price: 121, tolerancePercent: 20, want: false},
	}

	for _, tt := range tests {
		w := Window(&target, tt.tolerancePercent)
		if got := InRange(tt.price, w); got != tt.want {
			t.Errorf("InRange(%v, tol %v%%) = %v, want %v", tt.price, tt.tolerancePercent, got, tt.want)
		}
	}
}

func TestScorePrice(t *testing.T) {
	t.Run("in-range prices score distance from target", func(t *testing.T) {
		target := 130.0
		w := Window(&target, 10)

		if got := ScorePrice(128.99, &target, w); got < 1.0 || got > 1.02 {
			t.Errorf("ScorePrice(128.99) = %v, want ~1.01", got)
		}
		if got := ScorePrice(130, &target, w); got != 0 {
			t.Errorf("ScorePrice(130) = %v, want 0", got)
		}
	})

	t.Run("out-of-range prices score the disqualifying constant", func(t *testing.T) {
		target := 130.0
		w := Window(&target, 10)

		if got := ScorePrice(200, &target, w); got != outOfRangeScore {
			t.Errorf("ScorePrice(200) = %v, want %v", got, outOfRangeScore)
		}
	})

	t.Run("without a target the price itself is the score", func(t *testing.T) {
		w := Window(nil, 10)
		if got := ScorePrice(42.5, nil, w); got != 42.5 {
			t.Errorf("ScorePrice(42.5) = %v, want 42.5", got)
		}
	})
}

func TestEvaluateCandidates(t *testing.T) {
	target := 130.0
	w := Window(&target, 10)

	candidates := []*domain.Candidate{
		{Price: 128.99, Domain: "amazon.com"},
		{Price: 150.00, Domain: "target.com"},
	}

	EvaluateCandidates(candidates, &target, w)

	if !candidates[0].InRange {
		t.Error("128.99 should be in range [117, 143]")
	}
	if candidates[1].InRange {
		t.Error("150.00 should be out of range [117, 143]")
	}
	if candidates[1].Score != outOfRangeScore {
		t.Errorf("out-of-range score = %v, want %v", candidates[1].Score, outOfRangeScore)
	}
}

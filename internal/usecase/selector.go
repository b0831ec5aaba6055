package usecase

import (
	"fmt"
	"sort"

	"github.com/pricelens/backend/internal/domain"
)

const (
	// amazonTieBreakDelta is the price gap under which an Amazon listing
	// wins over a cheaper non-Amazon one.
	amazonTieBreakDelta = 1.0

	// DefaultWidenPercent is the fixed widening applied once when a hard
	// target window matches nothing, independent of the caller tolerance.
	DefaultWidenPercent = 20.0
)

// SelectBest ranks a candidate set and picks the single winner.
//
// With a target price the window is a hard filter: only in-window
// candidates are eligible, with one documented widening step (±widenPercent
// of target) when the window is empty. In-window candidates sort ascending
// by price, lowest price wins, with Amazon preferred when prices differ by
// less than one dollar.
//
// Without a target, candidates partition into four tiers (Amazon in-range,
// any in-range, any Amazon, anything trusted) and the cheapest member of
// the first non-empty tier wins.
//
// Identical candidate sets always yield the identical winner regardless of
// input order.
func SelectBest(candidates []*domain.Candidate, targetPrice *float64, window PriceWindow, widenPercent float64) *domain.Candidate {
	deduped := dedupeCandidates(candidates)
	if len(deduped) == 0 {
		return nil
	}

	if targetPrice != nil && *targetPrice > 0 {
		inWindow := filterInWindow(deduped, window)
		if len(inWindow) == 0 {
			if widenPercent <= 0 {
				widenPercent = DefaultWidenPercent
			}
			wider := Window(targetPrice, widenPercent)
			inWindow = filterInWindow(deduped, wider)
		}
		if len(inWindow) == 0 {
			return nil
		}
		return pickLowest(inWindow)
	}

	tiers := [][]*domain.Candidate{
		filterCandidates(deduped, func(c *domain.Candidate) bool { return c.IsAmazon && c.InRange }),
		filterCandidates(deduped, func(c *domain.Candidate) bool { return c.InRange }),
		filterCandidates(deduped, func(c *domain.Candidate) bool { return c.IsAmazon }),
		deduped,
	}

	for _, tier := range tiers {
		if len(tier) > 0 {
			return pickLowest(tier)
		}
	}

	return nil
}

// dedupeCandidates drops later duplicates of the same (price, domain)
// pair, guarding against one listing surfacing in multiple search rounds.
func dedupeCandidates(candidates []*domain.Candidate) []*domain.Candidate {
	seen := make(map[string]bool, len(candidates))
	var unique []*domain.Candidate
	for _, c := range candidates {
		if c == nil {
			continue
		}
		key := fmt.Sprintf("%.2f|%s", c.Price, c.Domain)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, c)
	}
	return unique
}

func filterInWindow(candidates []*domain.Candidate, window PriceWindow) []*domain.Candidate {
	return filterCandidates(candidates, func(c *domain.Candidate) bool {
		return InRange(c.Price, window)
	})
}

func filterCandidates(candidates []*domain.Candidate, keep func(*domain.Candidate) bool) []*domain.Candidate {
	var filtered []*domain.Candidate
	for _, c := range candidates {
		if keep(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// pickLowest sorts candidates into a strict total order (price, then
// domain, then URL) and returns the cheapest, except that an Amazon
// listing within amazonTieBreakDelta of the cheapest price wins the tie.
// The total order makes the result independent of input ordering.
func pickLowest(candidates []*domain.Candidate) *domain.Candidate {
	sorted := make([]*domain.Candidate, len(candidates))
	copy(sorted, candidates)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Price != sorted[j].Price {
			return sorted[i].Price < sorted[j].Price
		}
		if sorted[i].Domain != sorted[j].Domain {
			return sorted[i].Domain < sorted[j].Domain
		}
		return sorted[i].URL < sorted[j].URL
	})

	best := sorted[0]
	if best.IsAmazon {
		return best
	}

	for _, c := range sorted[1:] {
		if c.Price-best.Price >= amazonTieBreakDelta {
			break
		}
		if c.IsAmazon {
			return c
		}
	}

	return best
}

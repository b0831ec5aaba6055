package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pricelens/backend/internal/domain"
)

// ResolutionConfig holds the versioned policy parameters for one engine
// instance. Historic pricer variants differed only in these knobs, so they
// are injected here rather than forked into separate code paths.
type ResolutionConfig struct {
	TolerancePercent   float64
	WidenPercent       float64
	MaxFallbackWords   int
	RoundDelay         time.Duration
	SearchTimeout      time.Duration
	EnableDebugLogging bool
}

// ResolutionService resolves one item description (plus optional target
// price and tolerance) to a replacement-price result. It drives the
// search rounds, candidate extraction and selection, and memoizes every
// terminal result in the shared cache.
type ResolutionService struct {
	cache    domain.ResultCache
	provider domain.SearchProvider
	config   ResolutionConfig
}

// NewResolutionService creates a new resolution engine with dependencies
func NewResolutionService(
	cache domain.ResultCache,
	provider domain.SearchProvider,
	config ResolutionConfig,
) *ResolutionService {
	if config.TolerancePercent <= 0 {
		config.TolerancePercent = DefaultTolerancePercent
	}
	if config.WidenPercent <= 0 {
		config.WidenPercent = DefaultWidenPercent
	}
	if config.MaxFallbackWords <= 0 {
		config.MaxFallbackWords = 6
	}
	if config.SearchTimeout <= 0 {
		config.SearchTimeout = 6 * time.Second
	}

	return &ResolutionService{
		cache:    cache,
		provider: provider,
		config:   config,
	}
}

// Resolve looks up the replacement price for one inventory line item.
// Flow: check cache -> sanitize -> search rounds with early exit ->
// pooled selection across all rounds -> cache terminal result.
// Provider failures never surface as errors; each failed call counts as
// zero candidates for that round.
func (s *ResolutionService) Resolve(
	ctx context.Context,
	request *domain.ResolveRequest,
) (*domain.ResolutionResult, error) {
	if request == nil || request.Description == "" {
		return nil, domain.ErrInvalidRequest
	}

	tolerance := request.TolerancePercent
	if tolerance <= 0 {
		tolerance = s.config.TolerancePercent
	}

	query := SanitizeQuery(request.Description)
	if query == "" {
		return &domain.ResolutionResult{
			Found:   false,
			Message: "no usable search terms in item description",
		}, nil
	}

	cacheKey := CacheKey(query, request.TargetPrice, tolerance)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		hit := *cached
		hit.FromCache = true
		return &hit, nil
	}

	window := Window(request.TargetPrice, tolerance)
	plan := BuildQueryPlan(query, s.config.MaxFallbackWords)

	var pool []*domain.Candidate
	for round, attempt := range plan {
		if round > 0 {
			// Courtesy gap between provider calls within one resolution
			if !s.sleepRound(ctx) {
				break
			}
		}

		hits := s.searchRound(ctx, attempt, round+1)
		if len(hits) == 0 {
			continue
		}

		candidates := s.extractCandidates(hits, request.TargetPrice, window)
		pool = append(pool, candidates...)

		winner := SelectBest(candidates, request.TargetPrice, window, s.config.WidenPercent)
		if winner != nil && roundAccepts(winner, request.TargetPrice) {
			if s.config.EnableDebugLogging {
				log.Printf("[RESOLVE] Round %d satisfied: $%.2f from %s", round+1, winner.Price, winner.Domain)
			}
			result := s.buildResult(winner)
			s.storeResult(ctx, cacheKey, result)
			return result, nil
		}
	}

	// No single round satisfied the acceptance policy; select once more
	// over the union of everything seen.
	result := s.finalResult(pool, request.TargetPrice, window, tolerance)
	s.storeResult(ctx, cacheKey, result)
	return result, nil
}

// searchRound runs one provider call, normalizing every failure mode
// (timeout, non-2xx, malformed or empty body) to zero hits.
func (s *ResolutionService) searchRound(ctx context.Context, query string, round int) []domain.ShoppingHit {
	callCtx, cancel := context.WithTimeout(ctx, s.config.SearchTimeout)
	defer cancel()

	resp, err := s.provider.SearchShopping(callCtx, query)
	if err != nil {
		if s.config.EnableDebugLogging {
			log.Printf("[RESOLVE] Round %d query %q yielded no results: %v", round, query, err)
		}
		return nil
	}
	if resp == nil {
		return nil
	}

	return resp.ShoppingResults
}

// extractCandidates converts raw hits into evaluated candidates,
// silently discarding invalid ones.
func (s *ResolutionService) extractCandidates(
	hits []domain.ShoppingHit,
	targetPrice *float64,
	window PriceWindow,
) []*domain.Candidate {
	var candidates []*domain.Candidate
	for _, hit := range hits {
		if c := ExtractCandidate(hit); c != nil {
			candidates = append(candidates, c)
		}
	}
	EvaluateCandidates(candidates, targetPrice, window)
	return candidates
}

// roundAccepts decides whether a round winner ends the search early.
// A target price is a hard filter, so any winner satisfies it; without a
// target the winner must be in range or an Amazon listing.
func roundAccepts(winner *domain.Candidate, targetPrice *float64) bool {
	if targetPrice != nil && *targetPrice > 0 {
		return true
	}
	return winner.InRange || winner.IsAmazon
}

// finalResult packages the cross-round pooled selection, or a structured
// not-found report echoing the attempted window when one was set.
func (s *ResolutionService) finalResult(
	pool []*domain.Candidate,
	targetPrice *float64,
	window PriceWindow,
	tolerance float64,
) *domain.ResolutionResult {
	if winner := SelectBest(pool, targetPrice, window, s.config.WidenPercent); winner != nil {
		return s.buildResult(winner)
	}

	if targetPrice != nil && *targetPrice > 0 {
		return &domain.ResolutionResult{
			Found: false,
			Message: fmt.Sprintf(
				"no trusted offers found within $%.2f-$%.2f (target $%.2f, tolerance %.0f%%)",
				window.Min, window.Max, *targetPrice, tolerance,
			),
		}
	}

	return &domain.ResolutionResult{
		Found:   false,
		Message: "no priced offers from trusted retailers matched the description",
	}
}

// buildResult packages a winning candidate into the terminal result shape
func (s *ResolutionService) buildResult(winner *domain.Candidate) *domain.ResolutionResult {
	return &domain.ResolutionResult{
		Found:       true,
		Price:       winner.Price,
		Source:      winner.Domain,
		URL:         winner.URL,
		Category:    CategoryHSW,
		Subcategory: ClassifySubcategory(winner.Description),
		Description: winner.Description,
	}
}

// storeResult caches a terminal result; caching failures are logged, not fatal
func (s *ResolutionService) storeResult(ctx context.Context, key string, result *domain.ResolutionResult) {
	if err := s.cache.Put(ctx, key, result); err != nil && s.config.EnableDebugLogging {
		log.Printf("[RESOLVE] Failed to cache result for %q: %v", key, err)
	}
}

// sleepRound waits the configured inter-round delay, returning false when
// the caller cancelled instead.
func (s *ResolutionService) sleepRound(ctx context.Context) bool {
	if s.config.RoundDelay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(s.config.RoundDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

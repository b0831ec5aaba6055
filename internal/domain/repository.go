package domain

import "context"

// SearchProvider defines the interface for the upstream shopping-search
// service. Implementations may use official APIs or other mechanisms;
// failures and empty result lists are both surfaced as errors so callers
// can normalize them to "zero hits" for the round.
type SearchProvider interface {
	SearchShopping(ctx context.Context, query string) (*ShoppingSearchResponse, error)
}

// ResultCache defines the interface for memoizing terminal resolution
// results. Only complete results are ever stored; Get returns ErrCacheMiss
// when the key is absent.
type ResultCache interface {
	Get(ctx context.Context, key string) (*ResolutionResult, error)
	Put(ctx context.Context, key string, result *ResolutionResult) error
}

package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSearchAPIFailure is returned when a shopping search request fails
	ErrSearchAPIFailure = errors.New("shopping search request failed")

	// ErrNoResults is returned when a search returns an empty result list
	ErrNoResults = errors.New("no shopping results returned")

	// ErrRateLimited is returned when the provider rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when a result is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)

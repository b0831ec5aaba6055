package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/pricelens/backend/internal/domain"
)

// DefaultBatchWorkers bounds batch concurrency when none is configured.
// The shared provider client already enforces the global call gap, so a
// small pool only overlaps the non-network parts of each resolution.
const DefaultBatchWorkers = 2

// ResolveBatch resolves many inventory rows with a bounded worker pool
// sharing this engine's cache and provider. Results are positional: the
// i-th result corresponds to the i-th request. Caller cancellation stops
// dispatching new rows but does not interrupt in-flight resolutions; rows
// never dispatched carry a structured cancellation message. One bad row
// cannot abort the batch.
func (s *ResolutionService) ResolveBatch(
	ctx context.Context,
	requests []*domain.ResolveRequest,
	workers int,
) []*domain.ResolutionResult {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}
	if workers > len(requests) {
		workers = len(requests)
	}

	results := make([]*domain.ResolutionResult, len(requests))
	if len(requests) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.resolveRow(ctx, requests[i])
			}
		}()
	}

dispatch:
	for i := range requests {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for i, r := range results {
		if r == nil {
			results[i] = &domain.ResolutionResult{
				Found:   false,
				Message: "batch cancelled before this row was processed",
			}
		}
	}

	return results
}

// resolveRow wraps one resolution so that classified failures and even
// unexpected internal faults come back as structured results, never as
// errors or panics that could take down the batch.
func (s *ResolutionService) resolveRow(ctx context.Context, request *domain.ResolveRequest) (result *domain.ResolutionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &domain.ResolutionResult{
				Found:   false,
				Message: fmt.Sprintf("internal error resolving row: %v", r),
			}
		}
	}()

	result, err := s.Resolve(ctx, request)
	if err != nil {
		result = &domain.ResolutionResult{
			Found:   false,
			Message: fmt.Sprintf("row skipped: %v", err),
		}
	}
	return result
}

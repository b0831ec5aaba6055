package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/pricelens/backend/internal/domain"
	"golang.org/x/time/rate"
)

const maxAttempts = 3

// ClientConfig holds the tunable parameters for the shopping search client
type ClientConfig struct {
	APIKey         string
	BaseURL        string
	ResultCount    int
	Timeout        time.Duration
	CallsPerSecond float64
}

// Client handles communication with the SerpAPI Google Shopping endpoint
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	resultCount int
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new shopping search client. The rate limiter enforces
// a global minimum gap between outbound calls, shared by every resolution
// that uses this client.
func NewClient(cfg ClientConfig) *Client {
	resultCount := cfg.ResultCount
	if resultCount <= 0 {
		resultCount = 20
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 6 * time.Second
	}

	callsPerSecond := cfg.CallsPerSecond
	if callsPerSecond <= 0 {
		callsPerSecond = 0.5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		resultCount: resultCount,
		rateLimiter: rate.NewLimiter(rate.Limit(callsPerSecond), 1),
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// exponentialBackoff returns the wait duration before the next retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PriceLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchAPIFailure, err)
	}

	return resp, nil
}

// SearchShopping runs one Google Shopping query and returns the raw hit
// envelope. Transient failures are retried with exponential backoff; an
// empty result list is reported as ErrNoResults so callers can treat the
// round as zero hits.
func (c *Client) SearchShopping(ctx context.Context, query string) (*domain.ShoppingSearchResponse, error) {
	if c.debug {
		log.Printf("[SERP] SearchShopping called with query: %q", query)
	}

	endpoint := fmt.Sprintf("%s/search", c.baseURL)
	params := url.Values{}
	params.Add("engine", "google_shopping")
	params.Add("q", query)
	params.Add("api_key", c.apiKey)
	params.Add("num", fmt.Sprintf("%d", c.resultCount))
	params.Add("gl", "us")
	params.Add("hl", "en")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[SERP] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastErr
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[SERP] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			if resp.StatusCode == http.StatusTooManyRequests {
				lastErr = domain.ErrRateLimited
			} else {
				lastErr = fmt.Errorf("%w: status %d", domain.ErrSearchAPIFailure, resp.StatusCode)
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var searchResp domain.ShoppingSearchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if len(searchResp.ShoppingResults) == 0 {
			if c.debug {
				log.Printf("[SERP] No shopping results for query: %q", query)
			}
			return nil, domain.ErrNoResults
		}

		if c.debug {
			log.Printf("[SERP] Found %d shopping results for query: %q", len(searchResp.ShoppingResults), query)
		}
		return &searchResp, nil
	}

	return nil, lastErr
}

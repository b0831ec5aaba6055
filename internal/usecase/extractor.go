package usecase

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pricelens/backend/internal/domain"
)

// ManualValidationURL is the sentinel stored when a hit carries no usable
// product link; downstream consumers flag the row for manual review.
const ManualValidationURL = "Manual Validation Required"

// priceDigitsRegex keeps digits and decimal points from a display price
var priceDigitsRegex = regexp.MustCompile(`[^0-9.]`)

// ExtractCandidate converts one raw search hit into a typed Candidate.
// Hits with a missing, zero, or negative price, or from a retailer outside
// the allow-list, are discarded by returning nil. InRange and Score are
// left for the price range evaluator to fill in.
func ExtractCandidate(hit domain.ShoppingHit) *domain.Candidate {
	price := hit.ExtractedPrice
	if price <= 0 {
		price = parseDisplayPrice(hit.Price)
	}
	if price <= 0 {
		return nil
	}

	sourceDomain := ResolveTrustedSource(hit.Source)
	if sourceDomain == "" {
		return nil
	}

	return &domain.Candidate{
		Price:       price,
		Domain:      sourceDomain,
		URL:         deriveProductURL(hit),
		Description: hit.Title,
		IsAmazon:    sourceDomain == AmazonDomain,
	}
}

// parseDisplayPrice parses a display string like "$1,299.00" into a number.
// Returns 0 for anything non-numeric.
func parseDisplayPrice(display string) float64 {
	cleaned := priceDigitsRegex.ReplaceAllString(display, "")
	if cleaned == "" {
		return 0
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return price
}

// deriveProductURL picks the best direct product link from a hit, in fixed
// precedence: an Amazon product-detail link, the unwrapped destination of
// an ad-click redirect, the hit's product link, the raw link, and finally
// the manual-validation sentinel.
func deriveProductURL(hit domain.ShoppingHit) string {
	if hit.Link != "" && strings.Contains(hit.Link, "amazon.com") && strings.Contains(hit.Link, "/dp/") {
		return hit.Link
	}

	if dest := unwrapAdRedirect(hit.Link); dest != "" {
		return dest
	}

	if hit.ProductLink != "" {
		return hit.ProductLink
	}

	if hit.Link != "" {
		return hit.Link
	}

	return ManualValidationURL
}

// unwrapAdRedirect extracts the URL-decoded destination from an ad-click
// wrapper link. Returns "" when the link is not a redirect or is malformed.
func unwrapAdRedirect(link string) string {
	if link == "" || !strings.Contains(link, "adurl=") {
		return ""
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}

	return parsed.Query().Get("adurl")
}

package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
	quoteCharsRegex     = regexp.MustCompile(`['"]`)
)

// fillerTerms are stripped (whole-word, case-insensitive) when building
// fallback queries. Multi-word terms come first so "mail box" is removed
// before "box" could be considered part of another term.
var fillerTerms = []string{
	"heavy duty",
	"mail box",
	"postal box",
	"security",
	"commercial",
	"deluxe",
	"new",
}

var fillerTermRegexes = compileFillerTerms(fillerTerms)

func compileFillerTerms(terms []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		compiled = append(compiled, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return compiled
}

// minFallbackQueryLen is the shortest fallback string worth sending upstream
const minFallbackQueryLen = 3

// SanitizeQuery normalizes raw item text into a search-safe query string.
// Quote characters break the provider query syntax and are removed; runs
// of whitespace collapse to a single space. Other punctuation is kept.
// Empty input yields empty output, which callers treat as "no usable query".
func SanitizeQuery(raw string) string {
	cleaned := quoteCharsRegex.ReplaceAllString(raw, "")
	cleaned = multipleSpacesRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// stripFillerTerms removes low-signal retail terms from a query
func stripFillerTerms(query string) string {
	for _, re := range fillerTermRegexes {
		query = re.ReplaceAllString(query, " ")
	}
	query = multipleSpacesRegex.ReplaceAllString(query, " ")
	return strings.TrimSpace(query)
}

// truncateWords keeps the first maxWords words of a query
func truncateWords(query string, maxWords int) string {
	words := strings.Fields(query)
	if len(words) <= maxWords {
		return query
	}
	return strings.Join(words[:maxWords], " ")
}

// BuildQueryPlan generates the ordered list of search strings for one
// resolution: the sanitized query first, then deterministic fallbacks with
// filler terms stripped and word-count truncation applied. Strings that
// are empty, too short, or duplicates of an earlier round are skipped.
func BuildQueryPlan(sanitized string, maxFallbackWords int) []string {
	if sanitized == "" {
		return nil
	}
	if maxFallbackWords <= 0 {
		maxFallbackWords = 6
	}

	attempts := []string{
		sanitized,
		stripFillerTerms(sanitized),
		truncateWords(sanitized, maxFallbackWords),
		truncateWords(stripFillerTerms(sanitized), maxFallbackWords),
	}

	seen := make(map[string]bool, len(attempts))
	var plan []string
	for _, attempt := range attempts {
		if len(attempt) < minFallbackQueryLen {
			continue
		}
		key := strings.ToLower(attempt)
		if seen[key] {
			continue
		}
		seen[key] = true
		plan = append(plan, attempt)
	}

	return plan
}

// cacheKeyPrefixLen bounds the query portion of the cache key so
// near-duplicate inventory rows collapse onto one entry.
const cacheKeyPrefixLen = 50

// CacheKey derives the memo key for one (query, target, tolerance) triple
func CacheKey(query string, targetPrice *float64, tolerancePercent float64) string {
	prefix := strings.ToLower(query)
	if len(prefix) > cacheKeyPrefixLen {
		prefix = prefix[:cacheKeyPrefixLen]
	}

	target := "any"
	if targetPrice != nil && *targetPrice > 0 {
		target = fmt.Sprintf("%.2f", *targetPrice)
	}

	return fmt.Sprintf("price:%s:%s:%g", prefix, target, tolerancePercent)
}

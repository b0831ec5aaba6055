package usecase

import "strings"

// AmazonDomain is the canonical domain for Amazon listings, which get
// preferential tie-breaks during selection.
const AmazonDomain = "amazon.com"

// exactSources maps retailer display strings exactly as they appear in
// shopping results to canonical domains. This is the case-sensitive fast
// path; unrecognized strings fall through to the fragment scan.
var exactSources = map[string]string{
	"Amazon.com":              "amazon.com",
	"Amazon":                  "amazon.com",
	"Amazon.com - Seller":     "amazon.com",
	"Walmart":                 "walmart.com",
	"Walmart - RRX":           "walmart.com",
	"Walmart.com":             "walmart.com",
	"The Home Depot":          "homedepot.com",
	"Home Depot":              "homedepot.com",
	"Lowe's":                  "lowes.com",
	"Lowe's Home Improvement": "lowes.com",
	"Best Buy":                "bestbuy.com",
	"Wayfair":                 "wayfair.com",
	"Costco":                  "costco.com",
	"Costco Wholesale":        "costco.com",
	"Overstock.com":           "overstock.com",
	"Overstock":               "overstock.com",
	"Target":                  "target.com",
}

// sourceFragments is scanned in order against the lower-cased source
// string; the first containing fragment wins. Order is fixed so partial
// brand collisions stay deterministic.
var sourceFragments = []struct {
	fragment string
	domain   string
}{
	{"amazon", "amazon.com"},
	{"walmart", "walmart.com"},
	{"home depot", "homedepot.com"},
	{"homedepot", "homedepot.com"},
	{"lowe", "lowes.com"},
	{"best buy", "bestbuy.com"},
	{"bestbuy", "bestbuy.com"},
	{"wayfair", "wayfair.com"},
	{"costco", "costco.com"},
	{"overstock", "overstock.com"},
	{"target", "target.com"},
}

// ResolveTrustedSource maps a raw retailer string from a search hit to a
// canonical trusted domain. Returns "" when the retailer is not on the
// allow-list; that is not an error, the hit is simply discarded.
func ResolveTrustedSource(rawSource string) string {
	if rawSource == "" {
		return ""
	}

	if domain, ok := exactSources[rawSource]; ok {
		return domain
	}

	lower := strings.ToLower(rawSource)
	for _, entry := range sourceFragments {
		if strings.Contains(lower, entry.fragment) {
			return entry.domain
		}
	}

	return ""
}

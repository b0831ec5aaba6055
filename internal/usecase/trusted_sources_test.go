package usecase

import "testing"

func TestResolveTrustedSource(t *testing.T) {
	t.Run("resolves exact display strings", func(t *testing.T) {
		tests := []struct {
			raw  string
			want string
		}{
			{"Amazon.com", "amazon.com"},
			{"Walmart - RRX", "walmart.com"},
			{"The Home Depot", "homedepot.com"},
			{"Lowe's", "lowes.com"},
			{"Costco Wholesale", "costco.com"},
			{"Target", "target.com"},
		}

		for _, tt := range tests {
			if got := ResolveTrustedSource(tt.raw); got != tt.want {
				t.Errorf("ResolveTrustedSource(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		}
	})

	t.Run("falls back to case-insensitive fragment matching", func(t *testing.T) {
		tests := []struct {
			raw  string
			want string
		}{
			{"amazon.com - seller xyz", "amazon.com"},
			{"WALMART MARKETPLACE", "walmart.com"},
			{"shop at homedepot today", "homedepot.com"},
			{"Lowes Companies", "lowes.com"},
			{"BestBuy.com", "bestbuy.com"},
			{"Wayfair North America", "wayfair.com"},
			{"Overstock Liquidators", "overstock.com"},
		}

		for _, tt := range tests {
			if got := ResolveTrustedSource(tt.raw); got != tt.want {
				t.Errorf("ResolveTrustedSource(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		}
	})

	t.Run("returns empty string for unknown retailers", func(t *testing.T) {
		for _, raw := range []string{"RandomStore Inc.", "eBay", "AliExpress", "unknown.com", ""} {
			if got := ResolveTrustedSource(raw); got != "" {
				t.Errorf("ResolveTrustedSource(%q) = %q, want empty", raw, got)
			}
		}
	})
}

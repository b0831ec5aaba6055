package usecase

import (
	"strings"
	"testing"
)

func TestSanitizeQuery(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "collapses whitespace runs and trims",
			raw:  "  Mail   Box!! ",
			want: "Mail Box!!", // only quotes are stripped, punctuation stays
		},
		{
			name: "strips double quotes",
			raw:  `12" cast iron skillet`,
			want: "12 cast iron skillet",
		},
		{
			name: "strips single quotes",
			raw:  "Lowe's brand 6' ladder",
			want: "Lowes brand 6 ladder",
		},
		{
			name: "empty input yields empty output",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace-only input yields empty output",
			raw:  "   \t  ",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeQuery(tc.raw); got != tc.want {
				t.Errorf("SanitizeQuery(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestBuildQueryPlan(t *testing.T) {
	t.Run("primary query always comes first", func(t *testing.T) {
		plan := BuildQueryPlan("stainless steel dishwasher", 6)
		if len(plan) == 0 {
			t.Fatal("expected non-empty plan")
		}
		if plan[0] != "stainless steel dishwasher" {
			t.Errorf("plan[0] = %q, want original query", plan[0])
		}
	})

	t.Run("strips filler terms for fallback rounds", func(t *testing.T) {
		plan := BuildQueryPlan("New Heavy Duty Security Mail Box Post Mount Black Large", 6)

		want := []string{
			"New Heavy Duty Security Mail Box Post Mount Black Large",
			"Post Mount Black Large",
			"New Heavy Duty Security Mail Box",
		}
		if len(plan) != len(want) {
			t.Fatalf("plan length = %d, want %d (plan: %v)", len(plan), len(want), plan)
		}
		for i := range want {
			if plan[i] != want[i] {
				t.Errorf("plan[%d] = %q, want %q", i, plan[i], want[i])
			}
		}
	})

	t.Run("skips duplicate fallbacks", func(t *testing.T) {
		plan := BuildQueryPlan("oak table", 6)
		if len(plan) != 1 {
			t.Errorf("plan length = %d, want 1 (no filler terms, under word cap): %v", len(plan), plan)
		}
	})

	t.Run("skips fallbacks shorter than the minimum length", func(t *testing.T) {
		// Stripping filler from "new" leaves nothing usable
		plan := BuildQueryPlan("new", 6)
		if len(plan) != 1 {
			t.Fatalf("plan length = %d, want 1: %v", len(plan), plan)
		}
		if plan[0] != "new" {
			t.Errorf("plan[0] = %q, want the primary query", plan[0])
		}
	})

	t.Run("empty query yields empty plan", func(t *testing.T) {
		if plan := BuildQueryPlan("", 6); plan != nil {
			t.Errorf("plan = %v, want nil", plan)
		}
	})
}

func TestCacheKey(t *testing.T) {
	target := 130.0

	t.Run("lowercases and truncates the query prefix", func(t *testing.T) {
		long := strings.Repeat("Widget ", 20)
		key := CacheKey(long, &target, 10)
		if len(key) > len("price:")+50+len(":130.00:10") {
			t.Errorf("key too long: %q", key)
		}
		if key != strings.ToLower(key) {
			t.Errorf("key not lowercased: %q", key)
		}
	})

	t.Run("identical inputs produce identical keys", func(t *testing.T) {
		a := CacheKey("oak dining table", &target, 10)
		b := CacheKey("oak dining table", &target, 10)
		if a != b {
			t.Errorf("keys differ: %q vs %q", a, b)
		}
	})

	t.Run("target and tolerance distinguish keys", func(t *testing.T) {
		other := 99.0
		base := CacheKey("oak dining table", &target, 10)
		if CacheKey("oak dining table", &other, 10) == base {
			t.Error("different targets should produce different keys")
		}
		if CacheKey("oak dining table", &target, 20) == base {
			t.Error("different tolerances should produce different keys")
		}
		if CacheKey("oak dining table", nil, 10) == base {
			t.Error("missing target should produce a different key")
		}
	})
}

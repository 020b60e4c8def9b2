package usecase

import (
	"testing"

	"github.com/mealscan/backend/internal/catalog"
	"github.com/mealscan/backend/internal/domain"
)

func fallbackCatalog() catalog.Catalog {
	return catalog.New(catalog.FallbackFoods())
}

func TestNewResolver(t *testing.T) {
	t.Run("creates resolver with provided threshold", func(t *testing.T) {
		r := NewResolver(ResolverConfig{MinOverlapThreshold: 0.7}, nil)
		if r.minOverlapThreshold != 0.7 {
			t.Errorf("minOverlapThreshold = %v, want 0.7", r.minOverlapThreshold)
		}
	})

	t.Run("uses default threshold when zero", func(t *testing.T) {
		r := NewResolver(ResolverConfig{}, nil)
		if r.minOverlapThreshold != 0.5 {
			t.Errorf("minOverlapThreshold = %v, want 0.5 (default)", r.minOverlapThreshold)
		}
	})

	t.Run("uses default threshold when negative", func(t *testing.T) {
		r := NewResolver(ResolverConfig{MinOverlapThreshold: -1}, nil)
		if r.minOverlapThreshold != 0.5 {
			t.Errorf("minOverlapThreshold = %v, want 0.5 (default)", r.minOverlapThreshold)
		}
	})
}

func TestResolveAliases(t *testing.T) {
	r := NewResolver(ResolverConfig{}, nil)
	cat := fallbackCatalog()

	t.Run("alias substring wins immediately", func(t *testing.T) {
		item := r.Resolve("Apple", cat)
		if item.CanonicalID != "apple-raw" {
			t.Errorf("CanonicalID = %s, want apple-raw", item.CanonicalID)
		}
		if item.CanonicalName != "Apple, raw" {
			t.Errorf("CanonicalName = %s, want Apple, raw", item.CanonicalName)
		}
	})

	t.Run("alias matches inside longer phrases", func(t *testing.T) {
		item := r.Resolve("two scrambled eggs with butter", cat)
		if item.CanonicalID != "egg-whole" {
			t.Errorf("CanonicalID = %s, want egg-whole", item.CanonicalID)
		}
	})

	t.Run("alias order is first-match, not best-match", func(t *testing.T) {
		// "yogurt" precedes "milk" in the alias list
		item := r.Resolve("milk yogurt drink", cat)
		if item.CanonicalID != "yogurt-plain" {
			t.Errorf("CanonicalID = %s, want yogurt-plain", item.CanonicalID)
		}
	})

	t.Run("alias ignores punctuation and case", func(t *testing.T) {
		item := r.Resolve("  GRILLED-SALMON!! ", cat)
		if item.CanonicalID != "salmon-cooked" {
			t.Errorf("CanonicalID = %s, want salmon-cooked", item.CanonicalID)
		}
	})
}

func TestResolveScoring(t *testing.T) {
	r := NewResolver(ResolverConfig{}, nil)

	// Catalog without alias coverage so scoring is exercised
	cat := catalog.New([]domain.CanonicalFood{
		{CanonicalID: "lentil-soup", CanonicalName: "Lentil soup", Per100g: domain.ZeroVector(), Source: domain.SourceStub},
		{CanonicalID: "tomato-soup", CanonicalName: "Tomato soup", Per100g: domain.ZeroVector(), Source: domain.SourceStub},
	})

	t.Run("exact token match resolves", func(t *testing.T) {
		item := r.Resolve("lentil soup", cat)
		if item.CanonicalID != "lentil-soup" {
			t.Errorf("CanonicalID = %s, want lentil-soup", item.CanonicalID)
		}
	})

	t.Run("half overlap clears the threshold", func(t *testing.T) {
		item := r.Resolve("hearty lentil stew", cat)
		// tokens: hearty, lentil, stew -> 1/3 overlap, below threshold
		if item.CanonicalID != domain.FoodUnknownID {
			t.Errorf("CanonicalID = %s, want %s", item.CanonicalID, domain.FoodUnknownID)
		}

		item = r.Resolve("lentil stew", cat)
		// tokens: lentil, stew -> 1/2 overlap, meets threshold
		if item.CanonicalID != "lentil-soup" {
			t.Errorf("CanonicalID = %s, want lentil-soup", item.CanonicalID)
		}
	})

	t.Run("ties keep the first candidate in catalog order", func(t *testing.T) {
		item := r.Resolve("soup", cat)
		if item.CanonicalID != "lentil-soup" {
			t.Errorf("CanonicalID = %s, want lentil-soup (first in catalog order)", item.CanonicalID)
		}
	})

	t.Run("no overlap resolves to unknown", func(t *testing.T) {
		item := r.Resolve("Mystery Goop", cat)
		if item.CanonicalID != domain.FoodUnknownID {
			t.Errorf("CanonicalID = %s, want %s", item.CanonicalID, domain.FoodUnknownID)
		}
		if item.CanonicalName != "Unknown food" {
			t.Errorf("CanonicalName = %s, want Unknown food", item.CanonicalName)
		}
	})

	t.Run("empty and token-free names resolve to unknown", func(t *testing.T) {
		for _, name := range []string{"", "   ", "a 1 2", "fresh raw"} {
			item := r.Resolve(name, cat)
			if item.CanonicalID != domain.FoodUnknownID {
				t.Errorf("Resolve(%q) = %s, want %s", name, item.CanonicalID, domain.FoodUnknownID)
			}
		}
	})

	t.Run("resolution is deterministic", func(t *testing.T) {
		first := r.Resolve("lentil stew", cat)
		for i := 0; i < 10; i++ {
			if got := r.Resolve("lentil stew", cat); got.CanonicalID != first.CanonicalID {
				t.Fatalf("Resolve returned %s on repeat, want %s", got.CanonicalID, first.CanonicalID)
			}
		}
	})

	t.Run("resolved id always exists in the catalog", func(t *testing.T) {
		names := []string{"lentil soup", "tomato soup", "soup", "Mystery Goop", "", "salmon"}
		for _, name := range names {
			item := r.Resolve(name, cat)
			if _, ok := cat.Get(item.CanonicalID); !ok {
				t.Errorf("Resolve(%q) = %s, not present in catalog", name, item.CanonicalID)
			}
		}
	})
}

func TestResolveDisplayNameFallback(t *testing.T) {
	r := NewResolver(ResolverConfig{}, nil)
	cat := catalog.New([]domain.CanonicalFood{
		{CanonicalID: "nameless-curd", CanonicalName: "", Per100g: domain.ZeroVector(), Source: domain.SourceStub},
	})

	// Candidate with an empty display name cannot be token-matched, but an
	// unknown resolution must echo the input name back.
	item := r.Resolve("Mystery Goop", cat)
	if item.CanonicalID != domain.FoodUnknownID {
		t.Fatalf("CanonicalID = %s, want %s", item.CanonicalID, domain.FoodUnknownID)
	}
	if item.Name != "Mystery Goop" {
		t.Errorf("Name = %s, want original input name", item.Name)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Apple":             "apple",
		"  Grilled-Salmon ": "grilled salmon",
		"Chicken & Rice!!":  "chicken rice",
		"CAFÉ au lait":      "caf au lait",
		"":                  "",
	}
	for input, want := range cases {
		if got := normalizeName(input); got != want {
			t.Errorf("normalizeName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTokenizeName(t *testing.T) {
	t.Run("drops short, numeric, and stop-word tokens", func(t *testing.T) {
		tokens := tokenizeName("a fresh 100g x2 bowl of lentil soup")
		want := []string{"of", "lentil", "soup"}
		if len(tokens) != len(want) {
			t.Fatalf("tokens = %v, want %v", tokens, want)
		}
		for i := range want {
			if tokens[i] != want[i] {
				t.Errorf("tokens[%d] = %s, want %s", i, tokens[i], want[i])
			}
		}
	})
}

func TestOverlapScore(t *testing.T) {
	t.Run("score is in [0, 1]", func(t *testing.T) {
		cases := [][2][]string{
			{{"apple"}, {"apple"}},
			{{"apple", "pie"}, {"apple"}},
			{{"apple"}, {}},
			{{}, {"apple"}},
		}
		for _, c := range cases {
			score := overlapScore(c[0], c[1])
			if score < 0 || score > 1 {
				t.Errorf("overlapScore(%v, %v) = %v, out of [0, 1]", c[0], c[1], score)
			}
		}
	})

	t.Run("exact token match scores 1", func(t *testing.T) {
		if score := overlapScore([]string{"lentil", "soup"}, []string{"soup", "lentil"}); score != 1 {
			t.Errorf("score = %v, want 1", score)
		}
	})

	t.Run("duplicate query tokens count once", func(t *testing.T) {
		if score := overlapScore([]string{"apple", "apple"}, []string{"apple"}); score != 1 {
			t.Errorf("score = %v, want 1", score)
		}
	})
}

package usecase

import (
	"testing"

	"github.com/mealscan/backend/internal/catalog"
	"github.com/mealscan/backend/internal/domain"
)

func TestRank(t *testing.T) {
	cat := catalog.New(catalog.FallbackFoods())

	t.Run("orders contributors by score descending", func(t *testing.T) {
		items := []domain.MappedItem{
			{CanonicalID: "apple-raw", CanonicalName: "Apple, raw", Grams: 100},
			{CanonicalID: "spinach-raw", CanonicalName: "Spinach, raw", Grams: 100},
			{CanonicalID: "rice-white-cooked", CanonicalName: "Rice, white, cooked", Grams: 100},
		}

		contributors := Rank(items, cat)
		if len(contributors) != 3 {
			t.Fatalf("len(contributors) = %d, want 3", len(contributors))
		}
		// Spinach dwarfs apple and rice on micronutrient density
		if contributors[0].CanonicalID != "spinach-raw" {
			t.Errorf("top contributor = %s, want spinach-raw", contributors[0].CanonicalID)
		}
		for i := 1; i < len(contributors); i++ {
			if contributors[i].Score > contributors[i-1].Score {
				t.Errorf("contributors not sorted descending at %d", i)
			}
		}
	})

	t.Run("keeps at most three contributors", func(t *testing.T) {
		items := []domain.MappedItem{
			{CanonicalID: "apple-raw", Grams: 100},
			{CanonicalID: "spinach-raw", Grams: 100},
			{CanonicalID: "salmon-cooked", Grams: 100},
			{CanonicalID: "egg-whole", Grams: 100},
			{CanonicalID: "almonds", Grams: 100},
		}

		contributors := Rank(items, cat)
		if len(contributors) != 3 {
			t.Errorf("len(contributors) = %d, want 3", len(contributors))
		}
	})

	t.Run("drops non-positive scores", func(t *testing.T) {
		items := []domain.MappedItem{
			{CanonicalID: domain.FoodUnknownID, Grams: 500},
			{CanonicalID: "apple-raw", CanonicalName: "Apple, raw", Grams: 0},
			{CanonicalID: "no-such-food", Grams: 100},
		}

		contributors := Rank(items, cat)
		if len(contributors) != 0 {
			t.Errorf("contributors = %v, want empty", contributors)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		contributors := Rank(nil, cat)
		if len(contributors) != 0 {
			t.Errorf("len(contributors) = %d, want 0", len(contributors))
		}
	})

	t.Run("equal scores preserve original item order", func(t *testing.T) {
		// Same food twice with the same grams scores identically
		items := []domain.MappedItem{
			{CanonicalID: "apple-raw", CanonicalName: "first", Grams: 100},
			{CanonicalID: "apple-raw", CanonicalName: "second", Grams: 100},
		}

		contributors := Rank(items, cat)
		if len(contributors) != 2 {
			t.Fatalf("len(contributors) = %d, want 2", len(contributors))
		}
		if contributors[0].Name != "first" || contributors[1].Name != "second" {
			t.Errorf("tie order = [%s, %s], want [first, second]", contributors[0].Name, contributors[1].Name)
		}
	})
}

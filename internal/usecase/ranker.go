package usecase

import (
	"sort"

	"github.com/mealscan/backend/internal/catalog"
	"github.com/mealscan/backend/internal/domain"
)

// maxContributors caps how many top contributors a meal reports.
const maxContributors = 3

// Rank scores each resolved item by how much of the daily reference intake
// it covers on its own: the item's single-item percent-DV entries summed
// across all nutrient keys. Items with non-positive scores are dropped, the
// rest are ordered by score descending, and the top 3 are kept. Equal scores
// keep their original item order (stable sort).
func Rank(items []domain.MappedItem, cat catalog.Catalog) []domain.Contributor {
	contributors := make([]domain.Contributor, 0, len(items))

	for _, item := range items {
		totals := Aggregate([]domain.MappedItem{item}, cat)

		score := 0.0
		for _, key := range domain.NutrientKeys {
			score += totals.PercentDV[key]
		}
		if score <= 0 {
			continue
		}

		contributors = append(contributors, domain.Contributor{
			CanonicalID: item.CanonicalID,
			Name:        item.CanonicalName,
			Score:       score,
		})
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Score > contributors[j].Score
	})

	if len(contributors) > maxContributors {
		contributors = contributors[:maxContributors]
	}
	return contributors
}

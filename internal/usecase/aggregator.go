package usecase

import (
	"math"

	"github.com/mealscan/backend/internal/catalog"
	"github.com/mealscan/backend/internal/domain"
)

// Scale returns per100g scaled by grams/100 for every nutrient key. Grams
// are clamped to >= 0 before use.
func Scale(per100g domain.NutrientVector, grams float64) domain.NutrientVector {
	if grams < 0 || math.IsNaN(grams) {
		grams = 0
	}

	out := make(domain.NutrientVector, len(domain.NutrientKeys))
	factor := grams / 100
	for _, key := range domain.NutrientKeys {
		out[key] = per100g[key] * factor
	}
	return out
}

// SumVectors returns the elementwise sum of the given vectors.
func SumVectors(vectors ...domain.NutrientVector) domain.NutrientVector {
	out := domain.ZeroVector()
	for _, v := range vectors {
		for _, key := range domain.NutrientKeys {
			out[key] += v[key]
		}
	}
	return out
}

// PercentDV expresses totals as fractions of the daily reference values.
// Keys with a zero daily value yield 0, never NaN or Inf.
func PercentDV(totals domain.NutrientVector) domain.NutrientVector {
	out := make(domain.NutrientVector, len(domain.NutrientKeys))
	for _, key := range domain.NutrientKeys {
		dv := domain.DailyValues[key]
		if dv > 0 {
			out[key] = totals[key] / dv
		} else {
			out[key] = 0
		}
	}
	return out
}

// Aggregate scales each item's catalog vector by its grams, sums across the
// meal, and derives percent-of-daily-value totals. Unresolved canonical ids
// contribute the all-zero fallback vector. Pure: no I/O, no randomness,
// identical inputs produce identical outputs.
func Aggregate(items []domain.MappedItem, cat catalog.Catalog) domain.MealNutrientTotals {
	totals := domain.ZeroVector()

	for _, item := range items {
		per100g := domain.ZeroVector()
		if food, ok := cat.Get(item.CanonicalID); ok {
			per100g = food.Per100g
		}
		scaled := Scale(per100g, item.Grams)
		for _, key := range domain.NutrientKeys {
			totals[key] += scaled[key]
		}
	}

	return domain.MealNutrientTotals{
		Totals:    totals,
		PercentDV: PercentDV(totals),
	}
}

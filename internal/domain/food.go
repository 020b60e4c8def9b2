package domain

import "time"

// FoodUnknownID is the reserved catalog entry every unresolvable name maps
// to. It always exists and carries an all-zero nutrient vector.
const FoodUnknownID = "food-unknown"

// FoodSource records where a canonical food row came from.
type FoodSource string

const (
	SourceStub FoodSource = "stub"
	SourceUSDA FoodSource = "usda"
)

// CanonicalFood is a normalized, deduplicated reference food with nutrient
// amounts per 100 grams. CanonicalID is globally unique across the catalog.
type CanonicalFood struct {
	CanonicalID   string         `json:"canonical_id"`
	CanonicalName string         `json:"canonical_name"`
	Per100g       NutrientVector `json:"per_100g"`
	Source        FoodSource     `json:"source"`
	FdcID         string         `json:"fdc_id,omitempty"`
}

// ParsedItem is one food the vision collaborator extracted from a meal photo.
type ParsedItem struct {
	Name           string  `json:"name" binding:"required"`
	EstimatedGrams float64 `json:"estimated_grams"`
	Confidence     float64 `json:"confidence"`
}

// MappedItem is a parsed item after resolution against the catalog.
type MappedItem struct {
	Name          string  `json:"name"`
	CanonicalID   string  `json:"canonical_id"`
	CanonicalName string  `json:"canonical_name"`
	Grams         float64 `json:"grams"`
	Confidence    float64 `json:"confidence"`
}

// MealNutrientTotals holds a meal's summed nutrient amounts and the same
// totals expressed as fractions of the daily reference values.
type MealNutrientTotals struct {
	Totals    NutrientVector `json:"totals"`
	PercentDV NutrientVector `json:"percent_dv"`
}

// Contributor scores one resolved item by how much of the daily reference
// intake it covers across all tracked nutrients.
type Contributor struct {
	CanonicalID string  `json:"canonical_id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
}

// MealInsights bundles derived observations about a mapped meal.
type MealInsights struct {
	TopContributors []Contributor `json:"top_contributors"`
}

// MapResult is the full output of mapping one meal's parsed items.
type MapResult struct {
	Items             []MappedItem       `json:"items"`
	NutrientTotals    MealNutrientTotals `json:"nutrient_totals"`
	NutrientDBVersion string             `json:"nutrient_db_version"`
	Insights          MealInsights       `json:"insights"`
}

// MealRecord is the persisted meal row. Computed fields are nil until the
// meal has been mapped, and are replaced wholesale on every recomputation.
type MealRecord struct {
	ID                string              `json:"id"`
	CreatedAt         time.Time           `json:"created_at"`
	ParsedItems       []ParsedItem        `json:"parsed_items"`
	FinalItems        []MappedItem        `json:"final_items,omitempty"`
	NutrientTotals    *MealNutrientTotals `json:"nutrient_totals,omitempty"`
	NutrientDBVersion string              `json:"nutrient_db_version,omitempty"`
	Insights          *MealInsights       `json:"insights,omitempty"`
}

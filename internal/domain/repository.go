package domain

import "context"

// CatalogStore defines the persisted canonical-food table. Rows are keyed by
// canonical_id; UpsertFoods must be idempotent per batch.
type CatalogStore interface {
	ListFoods(ctx context.Context) ([]CanonicalFood, error)
	UpsertFoods(ctx context.Context, rows []CanonicalFood) error
}

// MealStore defines persistence for meal records and their computed results.
type MealStore interface {
	CreateMeal(ctx context.Context, items []ParsedItem) (string, error)
	GetMeal(ctx context.Context, id string) (*MealRecord, error)
	SaveMapResult(ctx context.Context, mealID string, result *MapResult) error
}

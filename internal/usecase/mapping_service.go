package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/mealscan/backend/internal/catalog"
	"github.com/mealscan/backend/internal/domain"
)

// MappingServiceConfig holds configuration for the mapping service
type MappingServiceConfig struct {
	MinOverlapThreshold float64
	EnableDebugLogging  bool
}

// MappingService orchestrates mapping a meal's parsed items into a nutrient
// report: resolve every item, aggregate totals, rank contributors, persist.
// Each invocation is an independent computation over a fresh catalog
// snapshot; no state is shared between requests.
type MappingService struct {
	loader   *catalog.Loader
	meals    domain.MealStore
	resolver *Resolver
	logger   *zap.SugaredLogger
}

// NewMappingService creates a mapping service with dependencies
func NewMappingService(
	loader *catalog.Loader,
	meals domain.MealStore,
	config MappingServiceConfig,
	logger *zap.SugaredLogger,
) *MappingService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	resolver := NewResolver(ResolverConfig{
		MinOverlapThreshold: config.MinOverlapThreshold,
		EnableDebugLogging:  config.EnableDebugLogging,
	}, logger)

	return &MappingService{
		loader:   loader,
		meals:    meals,
		resolver: resolver,
		logger:   logger,
	}
}

// MapMeal runs the full pipeline for one meal:
// validate -> load catalog -> resolve all -> aggregate -> rank -> persist.
// Catalog-load failure degrades silently to the static fallback set. A
// persistence failure fails the whole call; there is no "succeeded but not
// saved" state.
func (s *MappingService) MapMeal(ctx context.Context, mealID string, items []domain.ParsedItem) (*domain.MapResult, error) {
	if strings.TrimSpace(mealID) == "" {
		return nil, domain.ErrMissingMealID
	}

	cat, usedFallback := s.loader.Load(ctx)
	if usedFallback {
		s.logger.Infow("mapping with fallback catalog", "meal_id", mealID, "catalog_fallback", true)
	}

	mapped := make([]domain.MappedItem, 0, len(items))
	for _, item := range items {
		resolved := s.resolver.Resolve(item.Name, cat)
		resolved.Grams = clampGrams(item.EstimatedGrams)
		resolved.Confidence = clampConfidence(item.Confidence)
		mapped = append(mapped, resolved)
	}

	totals := Aggregate(mapped, cat)
	contributors := Rank(mapped, cat)

	result := &domain.MapResult{
		Items:             mapped,
		NutrientTotals:    totals,
		NutrientDBVersion: catalog.NutrientDBVersion,
		Insights:          domain.MealInsights{TopContributors: contributors},
	}

	if err := s.meals.SaveMapResult(ctx, mealID, result); err != nil {
		s.logger.Errorw("failed to persist map result", "meal_id", mealID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	return result, nil
}

// clampGrams clamps a mass estimate to a finite non-negative number
func clampGrams(grams float64) float64 {
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams < 0 {
		return 0
	}
	return grams
}

// clampConfidence clamps a confidence estimate into [0, 1]
func clampConfidence(confidence float64) float64 {
	if math.IsNaN(confidence) || confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

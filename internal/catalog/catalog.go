package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/mealscan/backend/internal/domain"
)

// NutrientDBVersion stamps every computed result so downstream consumers can
// detect when the underlying nutrient source data changed. Bump it whenever
// the fallback set or the ingest mapping changes.
const NutrientDBVersion = "v0.2-usda"

// Catalog is an immutable snapshot of canonical foods with stable iteration
// order. It is constructed once per request and passed by value into the
// resolver, aggregator, and ranker.
type Catalog struct {
	foods []domain.CanonicalFood
	index map[string]int
}

// New builds a catalog from rows, preserving row order. The reserved
// food-unknown entry is added if the rows do not carry it. Later duplicates
// of a canonical_id override earlier ones field-by-field.
func New(rows []domain.CanonicalFood) Catalog {
	c := Catalog{index: make(map[string]int, len(rows)+1)}
	c.put(domain.CanonicalFood{
		CanonicalID:   domain.FoodUnknownID,
		CanonicalName: "Unknown food",
		Per100g:       domain.ZeroVector(),
		Source:        domain.SourceStub,
	})
	for _, row := range rows {
		c.put(row)
	}
	return c
}

// put inserts or overlays one row, keeping first-insertion order.
func (c *Catalog) put(row domain.CanonicalFood) {
	if row.CanonicalID == "" {
		return
	}
	row.Per100g = row.Per100g.Normalize()
	if i, ok := c.index[row.CanonicalID]; ok {
		existing := c.foods[i]
		if row.CanonicalName != "" {
			existing.CanonicalName = row.CanonicalName
		}
		existing.Per100g = row.Per100g
		if row.Source != "" {
			existing.Source = row.Source
		}
		if row.FdcID != "" {
			existing.FdcID = row.FdcID
		}
		c.foods[i] = existing
		return
	}
	c.index[row.CanonicalID] = len(c.foods)
	c.foods = append(c.foods, row)
}

// Get returns the food for a canonical id.
func (c Catalog) Get(canonicalID string) (domain.CanonicalFood, bool) {
	i, ok := c.index[canonicalID]
	if !ok {
		return domain.CanonicalFood{}, false
	}
	return c.foods[i], true
}

// Foods returns all rows in catalog order, including the fallback entry.
func (c Catalog) Foods() []domain.CanonicalFood {
	return c.foods
}

// Len returns the number of rows, including the fallback entry.
func (c Catalog) Len() int {
	return len(c.foods)
}

// Loader builds request-scoped catalog snapshots, overlaying persisted rows
// on the static fallback set.
type Loader struct {
	store  domain.CatalogStore
	logger *zap.SugaredLogger
}

// NewLoader creates a loader. store may be nil, in which case every load
// uses the static fallback set.
func NewLoader(store domain.CatalogStore, logger *zap.SugaredLogger) *Loader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Loader{store: store, logger: logger}
}

// Load returns a fresh catalog snapshot. Store rows override fallback rows
// field-by-field keyed by canonical_id; fallback-only rows stay available.
// A store failure or an empty store degrades to the fallback set alone.
// usedFallback reports that so callers can observe degraded mode, but the
// degradation is never an error.
func (l *Loader) Load(ctx context.Context) (cat Catalog, usedFallback bool) {
	base := FallbackFoods()

	if l.store == nil {
		return New(base), true
	}

	stored, err := l.store.ListFoods(ctx)
	if err != nil {
		l.logger.Warnw("catalog store unavailable, using fallback set", "error", err)
		return New(base), true
	}
	if len(stored) == 0 {
		l.logger.Debugw("catalog store empty, using fallback set")
		return New(base), true
	}

	return New(append(base, stored...)), false
}

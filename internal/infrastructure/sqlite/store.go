package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mealscan/backend/internal/domain"
)

// Store persists canonical foods and meal records in SQLite. It implements
// both domain.CatalogStore and domain.MealStore.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at path and ensures the schema.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS canonical_foods (
        canonical_id TEXT PRIMARY KEY,
        canonical_name TEXT NOT NULL,
        per_100g TEXT NOT NULL,
        source TEXT NOT NULL,
        fdc_id TEXT NOT NULL DEFAULT ''
    );

    CREATE TABLE IF NOT EXISTS meals (
        id TEXT PRIMARY KEY,
        created_at TEXT NOT NULL,
        parsed_items TEXT NOT NULL DEFAULT '[]',
        final_items TEXT,
        nutrient_totals TEXT,
        nutrient_db_version TEXT,
        insights TEXT
    );
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// ListFoods returns every persisted canonical food in insertion order.
func (s *Store) ListFoods(ctx context.Context) ([]domain.CanonicalFood, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT canonical_id, canonical_name, per_100g, source, fdc_id
         FROM canonical_foods ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query canonical foods: %w", err)
	}
	defer rows.Close()

	var foods []domain.CanonicalFood
	for rows.Next() {
		var food domain.CanonicalFood
		var per100g string
		var source string
		if err := rows.Scan(&food.CanonicalID, &food.CanonicalName, &per100g, &source, &food.FdcID); err != nil {
			return nil, fmt.Errorf("failed to scan canonical food: %w", err)
		}
		var vector domain.NutrientVector
		if err := json.Unmarshal([]byte(per100g), &vector); err != nil {
			return nil, fmt.Errorf("failed to decode nutrient vector for %s: %w", food.CanonicalID, err)
		}
		food.Per100g = vector.Normalize()
		food.Source = domain.FoodSource(source)
		foods = append(foods, food)
	}

	return foods, rows.Err()
}

// UpsertFoods writes one batch of canonical rows in a single transaction,
// keyed by canonical_id. Replaying the same batch converges to the same
// state.
func (s *Store) UpsertFoods(ctx context.Context, batch []domain.CanonicalFood) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
        INSERT INTO canonical_foods (canonical_id, canonical_name, per_100g, source, fdc_id)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(canonical_id) DO UPDATE SET
            canonical_name = excluded.canonical_name,
            per_100g = excluded.per_100g,
            source = excluded.source,
            fdc_id = excluded.fdc_id
    `
	for _, food := range batch {
		per100g, err := json.Marshal(food.Per100g.Normalize())
		if err != nil {
			return fmt.Errorf("failed to encode nutrient vector for %s: %w", food.CanonicalID, err)
		}
		if _, err := tx.ExecContext(ctx, query,
			food.CanonicalID, food.CanonicalName, string(per100g), string(food.Source), food.FdcID); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", food.CanonicalID, err)
		}
	}

	return tx.Commit()
}

// CreateMeal stores a new meal row holding the parsed items and returns its
// generated id.
func (s *Store) CreateMeal(ctx context.Context, items []domain.ParsedItem) (string, error) {
	if items == nil {
		items = []domain.ParsedItem{}
	}
	parsed, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode parsed items: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO meals (id, created_at, parsed_items) VALUES (?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), string(parsed))
	if err != nil {
		return "", fmt.Errorf("failed to insert meal: %w", err)
	}

	return id, nil
}

// GetMeal loads a meal record by id.
func (s *Store) GetMeal(ctx context.Context, id string) (*domain.MealRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, parsed_items, final_items, nutrient_totals, nutrient_db_version, insights
         FROM meals WHERE id = ?`, id)

	var meal domain.MealRecord
	var createdAt, parsedItems string
	var finalItems, nutrientTotals, dbVersion, insights sql.NullString

	err := row.Scan(&meal.ID, &createdAt, &parsedItems, &finalItems, &nutrientTotals, &dbVersion, &insights)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan meal: %w", err)
	}

	if meal.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(parsedItems), &meal.ParsedItems); err != nil {
		return nil, fmt.Errorf("failed to decode parsed items: %w", err)
	}
	if finalItems.Valid {
		if err := json.Unmarshal([]byte(finalItems.String), &meal.FinalItems); err != nil {
			return nil, fmt.Errorf("failed to decode final items: %w", err)
		}
	}
	if nutrientTotals.Valid {
		meal.NutrientTotals = &domain.MealNutrientTotals{}
		if err := json.Unmarshal([]byte(nutrientTotals.String), meal.NutrientTotals); err != nil {
			return nil, fmt.Errorf("failed to decode nutrient totals: %w", err)
		}
	}
	if dbVersion.Valid {
		meal.NutrientDBVersion = dbVersion.String
	}
	if insights.Valid {
		meal.Insights = &domain.MealInsights{}
		if err := json.Unmarshal([]byte(insights.String), meal.Insights); err != nil {
			return nil, fmt.Errorf("failed to decode insights: %w", err)
		}
	}

	return &meal, nil
}

// SaveMapResult replaces the computed columns of the meal row wholesale. A
// meal id with no existing row gets one, so remapping never silently writes
// to nowhere.
func (s *Store) SaveMapResult(ctx context.Context, mealID string, result *domain.MapResult) error {
	finalItems, err := json.Marshal(result.Items)
	if err != nil {
		return fmt.Errorf("failed to encode final items: %w", err)
	}
	totals, err := json.Marshal(result.NutrientTotals)
	if err != nil {
		return fmt.Errorf("failed to encode nutrient totals: %w", err)
	}
	insights, err := json.Marshal(result.Insights)
	if err != nil {
		return fmt.Errorf("failed to encode insights: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO meals (id, created_at, final_items, nutrient_totals, nutrient_db_version, insights)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            final_items = excluded.final_items,
            nutrient_totals = excluded.nutrient_totals,
            nutrient_db_version = excluded.nutrient_db_version,
            insights = excluded.insights`,
		mealID, time.Now().UTC().Format(time.RFC3339),
		string(finalItems), string(totals), result.NutrientDBVersion, string(insights))
	if err != nil {
		return fmt.Errorf("failed to save map result: %w", err)
	}

	return nil
}

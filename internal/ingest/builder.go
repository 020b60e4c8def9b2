package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/mealscan/backend/internal/domain"
)

// Fixed file names expected inside the data directory (USDA FoodData
// Central export layout).
const (
	foodFile         = "food.csv"
	nutrientFile     = "nutrient.csv"
	foodNutrientFile = "food_nutrient.csv"
)

// UpsertBatchSize is how many rows each catalog store upsert carries.
const UpsertBatchSize = 500

// nutrientMapping ties one tracked nutrient key to the USDA definition rows
// it accepts: the definition's unit must match and its normalized name must
// equal one of the accepted names.
type nutrientMapping struct {
	key   domain.NutrientKey
	unit  string
	names []string
}

var nutrientMappings = []nutrientMapping{
	{domain.VitaminAUg, "UG", []string{"vitamin a, rae"}},
	{domain.VitaminCMg, "MG", []string{"vitamin c, total ascorbic acid"}},
	{domain.VitaminDUg, "UG", []string{"vitamin d (d2 + d3)"}},
	{domain.VitaminEMg, "MG", []string{"vitamin e (alpha-tocopherol)"}},
	{domain.VitaminKUg, "UG", []string{"vitamin k (phylloquinone)"}},
	{domain.ThiaminMg, "MG", []string{"thiamin"}},
	{domain.RiboflavinMg, "MG", []string{"riboflavin"}},
	{domain.NiacinMg, "MG", []string{"niacin"}},
	{domain.VitaminB6Mg, "MG", []string{"vitamin b-6"}},
	{domain.FolateUg, "UG", []string{"folate, total"}},
	{domain.VitaminB12Ug, "UG", []string{"vitamin b-12"}},
	{domain.CalciumMg, "MG", []string{"calcium, ca"}},
	{domain.IronMg, "MG", []string{"iron, fe"}},
	{domain.MagnesiumMg, "MG", []string{"magnesium, mg"}},
	{domain.PhosphorusMg, "MG", []string{"phosphorus, p"}},
	{domain.PotassiumMg, "MG", []string{"potassium, k"}},
	{domain.ZincMg, "MG", []string{"zinc, zn"}},
	{domain.SeleniumUg, "UG", []string{"selenium, se"}},
	{domain.Omega3G, "G", []string{"fatty acids, total omega-3"}},
}

// categoryMarker is the classification substring a food row must carry to be
// kept; rows with an empty classification are kept as well.
const categoryMarker = "foundation"

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)
	multiHyphenRegex     = regexp.MustCompile(`-+`)
)

// normalizeField lowercases and collapses runs of non-alphanumeric
// characters to single spaces. Used for header and nutrient-name matching.
func normalizeField(s string) string {
	return strings.TrimSpace(nonAlphanumericRegex.ReplaceAllString(strings.ToLower(s), " "))
}

// Slugify turns a food description into a canonical id slug: lowercase,
// non-alphanumeric runs collapsed to hyphens, trimmed. Empty descriptions
// slug to "food".
func Slugify(s string) string {
	slug := nonAlphanumericRegex.ReplaceAllString(strings.ToLower(s), "-")
	slug = multiHyphenRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "food"
	}
	return slug
}

// table is one parsed CSV file: ordered headers plus rows keyed by header.
type table struct {
	headers []string
	rows    []map[string]string
}

// readTable parses a CSV file into header-keyed rows. Ragged rows are
// tolerated: short rows leave trailing columns empty, long rows drop the
// extras.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return &table{}, nil
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &table{headers: headers, rows: rows}, nil
}

// findHeader returns the first header whose normalized form equals one of
// the accepted synonyms, or "" if none does.
func findHeader(headers []string, candidates []string) string {
	for _, header := range headers {
		normalized := normalizeField(header)
		for _, candidate := range candidates {
			if normalized == normalizeField(candidate) {
				return header
			}
		}
	}
	return ""
}

// columnMap resolves every required logical field to an actual header. A
// missing field is a fatal configuration error naming the field and the
// headers actually present.
func columnMap(headers []string, required map[string][]string) (map[string]string, error) {
	resolved := make(map[string]string, len(required))
	for field, candidates := range required {
		header := findHeader(headers, candidates)
		if header == "" {
			return nil, fmt.Errorf("missing column for %s; headers: %s", field, strings.Join(headers, ", "))
		}
		resolved[field] = header
	}
	return resolved, nil
}

// buildNutrientLookup maps USDA nutrient definition ids to tracked nutrient
// keys. Definitions that match no (key, unit, name) triple are ignored.
func buildNutrientLookup(t *table) (map[string]domain.NutrientKey, error) {
	columns, err := columnMap(t.headers, map[string][]string{
		"id":   {"id", "nutrient_id"},
		"name": {"name", "nutrient_name"},
		"unit": {"unit_name", "unit"},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nutrientFile, err)
	}

	lookup := make(map[string]domain.NutrientKey)
	for _, row := range t.rows {
		id := row[columns["id"]]
		if id == "" {
			continue
		}
		name := normalizeField(row[columns["name"]])
		unit := strings.ToUpper(row[columns["unit"]])
		for _, mapping := range nutrientMappings {
			if mapping.unit != unit {
				continue
			}
			for _, accepted := range mapping.names {
				if normalizeField(accepted) == name {
					lookup[id] = mapping.key
					break
				}
			}
		}
	}

	return lookup, nil
}

// Options controls a catalog build.
type Options struct {
	// Limit caps the number of emitted rows; zero means no cap.
	Limit int
}

// Build converts the three USDA export files inside dataDir into canonical
// food rows in source order. Foods whose classification carries no
// recognized category marker are discarded; slug collisions among distinct
// source records are disambiguated by suffixing the originating fdc_id to
// all but the first occurrence.
func Build(dataDir string, opts Options) ([]domain.CanonicalFood, error) {
	for _, name := range []string{foodFile, nutrientFile, foodNutrientFile} {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err != nil {
			return nil, fmt.Errorf("expected %s, %s, and %s inside %s: %w",
				foodFile, nutrientFile, foodNutrientFile, dataDir, err)
		}
	}

	foodTable, err := readTable(filepath.Join(dataDir, foodFile))
	if err != nil {
		return nil, err
	}
	nutrientTable, err := readTable(filepath.Join(dataDir, nutrientFile))
	if err != nil {
		return nil, err
	}
	measurementTable, err := readTable(filepath.Join(dataDir, foodNutrientFile))
	if err != nil {
		return nil, err
	}

	foodColumns, err := columnMap(foodTable.headers, map[string][]string{
		"fdc_id":      {"fdc_id", "fdc id"},
		"description": {"description", "food_description"},
		"data_type":   {"data_type", "data type"},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", foodFile, err)
	}

	// Kept foods in source order
	type foodInfo struct {
		fdcID       string
		description string
	}
	var order []string
	foods := make(map[string]foodInfo)
	for _, row := range foodTable.rows {
		fdcID := row[foodColumns["fdc_id"]]
		if fdcID == "" {
			continue
		}
		dataType := strings.ToLower(row[foodColumns["data_type"]])
		if dataType != "" && !strings.Contains(dataType, categoryMarker) {
			continue
		}
		if _, exists := foods[fdcID]; !exists {
			order = append(order, fdcID)
		}
		foods[fdcID] = foodInfo{fdcID: fdcID, description: row[foodColumns["description"]]}
	}

	nutrientLookup, err := buildNutrientLookup(nutrientTable)
	if err != nil {
		return nil, err
	}

	measurementColumns, err := columnMap(measurementTable.headers, map[string][]string{
		"fdc_id":      {"fdc_id", "fdc id"},
		"nutrient_id": {"nutrient_id", "nutrient id"},
		"amount":      {"amount", "value"},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", foodNutrientFile, err)
	}

	perFood := make(map[string]domain.NutrientVector)
	for _, row := range measurementTable.rows {
		fdcID := row[measurementColumns["fdc_id"]]
		if _, kept := foods[fdcID]; !kept {
			continue
		}
		key, mapped := nutrientLookup[row[measurementColumns["nutrient_id"]]]
		if !mapped {
			continue
		}
		amount, err := strconv.ParseFloat(row[measurementColumns["amount"]], 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			continue
		}
		vector, ok := perFood[fdcID]
		if !ok {
			vector = domain.ZeroVector()
			perFood[fdcID] = vector
		}
		vector[key] = amount
	}

	slugCounts := make(map[string]int)
	rows := make([]domain.CanonicalFood, 0, len(order))
	for _, fdcID := range order {
		info := foods[fdcID]
		if info.description == "" {
			continue
		}

		baseSlug := Slugify(info.description)
		slugCounts[baseSlug]++
		canonicalID := baseSlug
		if slugCounts[baseSlug] > 1 {
			canonicalID = baseSlug + "-" + fdcID
		}

		per100g, ok := perFood[fdcID]
		if !ok {
			per100g = domain.ZeroVector()
		}

		rows = append(rows, domain.CanonicalFood{
			CanonicalID:   canonicalID,
			CanonicalName: info.description,
			Per100g:       per100g,
			Source:        domain.SourceUSDA,
			FdcID:         fdcID,
		})
		if opts.Limit > 0 && len(rows) >= opts.Limit {
			break
		}
	}

	return rows, nil
}

// UpsertChunked writes rows to the catalog store in fixed-size batches.
// Batches run strictly in sequence; the first failed batch aborts the run.
// The returned count is how many rows were committed before the failure.
// Already-committed batches are not rolled back, and the operation is
// idempotent per batch, so a rerun converges.
func UpsertChunked(ctx context.Context, store domain.CatalogStore, rows []domain.CanonicalFood, progress func(done, total int)) (int, error) {
	committed := 0
	for start := 0; start < len(rows); start += UpsertBatchSize {
		end := start + UpsertBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := store.UpsertFoods(ctx, rows[start:end]); err != nil {
			return committed, fmt.Errorf("catalog upsert failed after %d rows: %w", committed, err)
		}
		committed = end
		if progress != nil {
			progress(committed, len(rows))
		}
	}
	return committed, nil
}

package usecase

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/mealscan/backend/internal/catalog"
	"github.com/mealscan/backend/internal/domain"
)

// Package-level compiled regex pattern for performance
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// alias is a curated substring shortcut to a canonical id. The alias list is
// ordered and first-match wins: an earlier entry overrides any later entry
// (and any scored candidate), so ordering is part of the behavior.
type alias struct {
	substring   string
	canonicalID string
}

// aliases are scanned in order against the normalized query. Substring
// matching is intentional ("scrambled egg" hits "egg") and so is its quirk
// ("pineapple" hits "apple"); curation order is the control knob.
var aliases = []alias{
	{"yogurt", "yogurt-plain"},
	{"apple", "apple-raw"},
	{"banana", "banana-raw"},
	{"orange", "orange-raw"},
	{"avocado", "avocado-raw"},
	{"spinach", "spinach-raw"},
	{"broccoli", "broccoli-cooked"},
	{"salmon", "salmon-cooked"},
	{"chicken", "chicken-breast-cooked"},
	{"egg", "egg-whole"},
	{"milk", "milk-whole"},
	{"rice", "rice-white-cooked"},
	{"bread", "bread-whole-wheat"},
	{"toast", "bread-whole-wheat"},
	{"almond", "almonds"},
}

// resolverStopWords are generic descriptors that carry no signal for
// identifying the food itself.
var resolverStopWords = map[string]bool{
	"fresh": true, "raw": true, "cooked": true, "sample": true, "store": true,
	"organic": true, "plain": true, "whole": true, "homemade": true,
	"sliced": true, "diced": true, "chopped": true, "piece": true,
	"pieces": true, "serving": true, "plate": true, "bowl": true,
	"small": true, "medium": true, "large": true,
}

// ResolverConfig holds configuration for the name resolver
type ResolverConfig struct {
	MinOverlapThreshold float64
	EnableDebugLogging  bool
}

// Resolver maps freeform food names onto canonical catalog entries.
// Resolution is a pure function of (name, catalog): no external state,
// no randomness.
type Resolver struct {
	minOverlapThreshold float64
	enableDebugLogging  bool
	logger              *zap.SugaredLogger
}

// NewResolver creates a resolver with the given configuration
func NewResolver(config ResolverConfig, logger *zap.SugaredLogger) *Resolver {
	threshold := config.MinOverlapThreshold
	if threshold <= 0 {
		threshold = 0.5 // Default: half the query tokens must match
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Resolver{
		minOverlapThreshold: threshold,
		enableDebugLogging:  config.EnableDebugLogging,
		logger:              logger,
	}
}

// Resolve maps a freeform food name to a canonical item. Matching order:
//  1. Alias shortcut: first alias whose substring appears in the normalized
//     name wins immediately, bypassing scoring.
//  2. Token-overlap scoring over every non-fallback catalog entry:
//     score = matched distinct query tokens / distinct query tokens.
//     Ties keep the first candidate in catalog order; the best candidate is
//     accepted only at or above the overlap threshold.
//
// Anything else resolves to the reserved food-unknown entry.
func (r *Resolver) Resolve(name string, cat catalog.Catalog) domain.MappedItem {
	normalized := normalizeName(name)

	for _, a := range aliases {
		if strings.Contains(normalized, a.substring) {
			if _, ok := cat.Get(a.canonicalID); !ok {
				continue
			}
			if r.enableDebugLogging {
				r.logger.Debugw("alias match", "name", name, "substring", a.substring, "canonical_id", a.canonicalID)
			}
			return r.mappedItem(name, a.canonicalID, cat)
		}
	}

	queryTokens := tokenizeName(normalized)
	if len(queryTokens) == 0 {
		return r.mappedItem(name, domain.FoodUnknownID, cat)
	}

	bestID := domain.FoodUnknownID
	bestScore := 0.0

	for _, food := range cat.Foods() {
		if food.CanonicalID == domain.FoodUnknownID {
			continue
		}
		score := overlapScore(queryTokens, tokenizeName(normalizeName(food.CanonicalName)))
		if r.enableDebugLogging {
			r.logger.Debugw("candidate score", "name", name, "candidate", food.CanonicalID, "score", score)
		}
		// Strictly greater: ties keep the first candidate encountered
		if score > bestScore {
			bestScore = score
			bestID = food.CanonicalID
		}
	}

	if bestScore < r.minOverlapThreshold {
		if r.enableDebugLogging {
			r.logger.Debugw("no match above threshold", "name", name, "best_score", bestScore)
		}
		bestID = domain.FoodUnknownID
	}

	return r.mappedItem(name, bestID, cat)
}

// mappedItem builds the resolver output, falling back to the input name when
// the catalog entry carries no display name.
func (r *Resolver) mappedItem(name, canonicalID string, cat catalog.Catalog) domain.MappedItem {
	displayName := name
	if food, ok := cat.Get(canonicalID); ok && food.CanonicalName != "" {
		displayName = food.CanonicalName
	}
	return domain.MappedItem{
		Name:          name,
		CanonicalID:   canonicalID,
		CanonicalName: displayName,
	}
}

// normalizeName lowercases, collapses runs of non-alphanumeric characters to
// single spaces, and trims.
func normalizeName(s string) string {
	cleaned := nonAlphanumericRegex.ReplaceAllString(strings.ToLower(s), " ")
	return strings.TrimSpace(cleaned)
}

// tokenizeName splits a normalized name into scoring tokens. Drops tokens of
// length <= 1, tokens containing a digit, and stop words.
func tokenizeName(normalized string) []string {
	words := strings.Fields(normalized)

	var tokens []string
	for _, word := range words {
		if len(word) <= 1 {
			continue
		}
		if containsDigit(word) {
			continue
		}
		if resolverStopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// containsDigit reports whether the string has any decimal digit
func containsDigit(s string) bool {
	for _, c := range s {
		if c >= '0' && c <= '9' {
			return true
		}
	}
	return false
}

// overlapScore returns the fraction of distinct query tokens present among
// the candidate tokens. Always in [0, 1]; an exact token match scores 1.
func overlapScore(queryTokens, candidateTokens []string) float64 {
	query := make(map[string]bool, len(queryTokens))
	for _, t := range queryTokens {
		query[t] = true
	}
	if len(query) == 0 {
		return 0
	}

	candidate := make(map[string]bool, len(candidateTokens))
	for _, t := range candidateTokens {
		candidate[t] = true
	}

	matched := 0
	for t := range query {
		if candidate[t] {
			matched++
		}
	}

	return float64(matched) / float64(len(query))
}

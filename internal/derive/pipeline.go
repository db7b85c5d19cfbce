package derive

import (
	"sort"
	"strconv"
	"strings"

	"github.com/blendbase/backend/internal/models"
)

// Sort keys accepted by ViewConfig.
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortHighestRated = "highest-rated"
	SortMostReviewed = "most-reviewed"
	SortQuickest     = "quickest"
)

// ViewConfig selects and orders the recipes to present. The zero-ish
// encodings ("", "all", "0") each disable their filter.
type ViewConfig struct {
	// SearchTerm matches case-insensitively against title or description.
	SearchTerm string
	// PrepTimeCeiling is "all" or a number of minutes; recipes above the
	// ceiling are dropped.
	PrepTimeCeiling string
	// RatingFloor is a string-encoded integer "0".."4"; recipes with an
	// average below it are dropped.
	RatingFloor string
	// SortKey is one of the Sort* constants; unknown keys leave the
	// filtered order untouched.
	SortKey string
}

// DefaultViewConfig returns the config the home view starts from: no
// filters, newest first.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		SearchTerm:      "",
		PrepTimeCeiling: "all",
		RatingFloor:     "0",
		SortKey:         SortNewest,
	}
}

// Apply filters then sorts the enriched collection. The filters are
// commutative; the sort runs once, after all of them, and is stable so
// equal-key recipes keep their prior relative order. The input slice is
// not modified.
func Apply(recipes []EnrichedRecipe, cfg ViewConfig) []EnrichedRecipe {
	filtered := make([]EnrichedRecipe, 0, len(recipes))
	for _, r := range recipes {
		if matchesSearch(r.Recipe, cfg.SearchTerm) &&
			matchesPrepTime(r.Recipe, cfg.PrepTimeCeiling) &&
			matchesRating(r, cfg.RatingFloor) {
			filtered = append(filtered, r)
		}
	}

	switch cfg.SortKey {
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case SortHighestRated:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].AvgRating > filtered[j].AvgRating
		})
	case SortMostReviewed:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ReviewCount > filtered[j].ReviewCount
		})
	case SortQuickest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PrepTime < filtered[j].PrepTime
		})
	}

	return filtered
}

// DeriveView is the single entry point for the presentation layer:
// enrichment followed by filtering and sorting, all on one consistent
// snapshot of recipes and reviews.
func DeriveView(recipes []models.Recipe, reviews []models.Review, cfg ViewConfig) []EnrichedRecipe {
	return Apply(Enrich(recipes, reviews), cfg)
}

func matchesSearch(r models.Recipe, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term)
}

func matchesPrepTime(r models.Recipe, ceiling string) bool {
	if ceiling == "" || ceiling == "all" {
		return true
	}
	max, err := strconv.Atoi(ceiling)
	if err != nil {
		// Unparseable ceiling disables the filter rather than
		// excluding every recipe.
		return true
	}
	return r.PrepTime <= max
}

func matchesRating(r EnrichedRecipe, floor string) bool {
	if floor == "" || floor == "0" {
		return true
	}
	min, err := strconv.ParseFloat(floor, 64)
	if err != nil {
		return true
	}
	return r.AvgRating >= min
}

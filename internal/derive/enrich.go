package derive

import "github.com/blendbase/backend/internal/models"

// EnrichedRecipe is a recipe annotated with its aggregated rating data.
// It is derived on every fetch cycle and never persisted.
type EnrichedRecipe struct {
	models.Recipe
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

// Enrich joins recipes with their aggregated ratings, preserving the
// input order. Recipes with zero reviews come through with (0, 0).
func Enrich(recipes []models.Recipe, reviews []models.Review) []EnrichedRecipe {
	enriched := make([]EnrichedRecipe, len(recipes))
	for i, recipe := range recipes {
		avg, count := Aggregate(reviews, recipe.ID)
		enriched[i] = EnrichedRecipe{
			Recipe:      recipe,
			AvgRating:   avg,
			ReviewCount: count,
		}
	}
	return enriched
}

// Package derive computes the enriched recipe listing: per-recipe rating
// aggregation, enrichment, and the filter/sort pipeline behind the home
// view. Everything here is a pure function of its inputs; nothing is
// cached between calls.
package derive

import (
	"math"

	"github.com/google/uuid"

	"github.com/blendbase/backend/internal/models"
)

// Aggregate computes the mean rating and review count for a recipe from
// the full review set. No reviews is a normal state, not an error: the
// result is (0, 0). The average is rounded to one decimal place.
func Aggregate(reviews []models.Review, recipeID uuid.UUID) (avgRating float64, reviewCount int) {
	sum := 0
	for _, r := range reviews {
		if r.RecipeID == recipeID {
			sum += r.Rating
			reviewCount++
		}
	}
	if reviewCount == 0 {
		return 0, 0
	}
	avgRating = math.Round(float64(sum)/float64(reviewCount)*10) / 10
	return avgRating, reviewCount
}

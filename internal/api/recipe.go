package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/blendbase/backend/internal/derive"
	"github.com/blendbase/backend/internal/service"
	"github.com/blendbase/backend/internal/types"
)

type RecipeHandler struct {
	recipes service.IRecipeService
	reviews service.IReviewService
}

func NewRecipeHandler(recipes service.IRecipeService, reviews service.IReviewService) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		reviews: reviews,
	}
}

// ListRecipes serves the home listing: a fresh recipe+review snapshot
// run through the derivation pipeline with the caller's filter config.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	cfg := derive.DefaultViewConfig()
	if q := c.Query("q"); q != "" {
		cfg.SearchTerm = q
	}
	if ceiling := c.Query("max_prep_time"); ceiling != "" {
		cfg.PrepTimeCeiling = ceiling
	}
	if floor := c.Query("min_rating"); floor != "" {
		cfg.RatingFloor = floor
	}
	if sortKey := c.Query("sort"); sortKey != "" {
		cfg.SortKey = sortKey
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	reviews, err := h.reviews.ListReviews(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	view := derive.DeriveView(recipes, reviews, cfg)

	c.JSON(http.StatusOK, gin.H{
		"recipes": view,
		"count":   len(view),
		"total":   len(recipes),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	reviews, err := h.reviews.ListReviews(c.Request.Context(), &id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	avg, count := derive.Aggregate(reviews, id)
	c.JSON(http.StatusOK, derive.EnrichedRecipe{
		Recipe:      *recipe,
		AvgRating:   avg,
		ReviewCount: count,
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, username, ok := currentUser(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), userID, username, &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, userID, &req)
	if err != nil {
		writeServiceError(c, err, "Failed to update recipe")
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id, userID); err != nil {
		writeServiceError(c, err, "Failed to delete recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      id.String(),
	})
}

// currentUser reads the authenticated identity the auth middleware put in
// the context. Handlers receive identity as a plain value; nothing below
// them sees session state.
func currentUser(c *gin.Context) (uuid.UUID, string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, "", false
	}
	username, _ := c.Get("username")
	name, _ := username.(string)
	return userID.(uuid.UUID), name, true
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this recipe"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

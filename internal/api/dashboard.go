package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blendbase/backend/internal/service"
)

// DashboardHandler serves the caller's own recipes.
type DashboardHandler struct {
	recipes service.IRecipeService
}

func NewDashboardHandler(recipes service.IRecipeService) *DashboardHandler {
	return &DashboardHandler{recipes: recipes}
}

func (h *DashboardHandler) ListOwnRecipes(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	recipes, err := h.recipes.ListUserRecipes(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

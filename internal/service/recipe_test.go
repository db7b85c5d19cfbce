package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blendbase/backend/internal/models"
	"github.com/blendbase/backend/internal/types"
)

func validCreateRequest(title string) *types.CreateRecipeRequest {
	return &types.CreateRecipeRequest{
		Title:       title,
		Description: "A description",
		Directions:  "Blend it all.",
		Ingredients: models.IngredientList{
			{Amount: "1 cup", Name: "strawberries"},
		},
	}
}

func TestCreateRecipeAppliesDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	user := createTestUser(t, db, "creator")

	recipe, err := svc.CreateRecipe(context.Background(), user.ID, "creator", validCreateRequest("Berry Blast"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPrepTime, recipe.PrepTime)
	assert.Equal(t, DefaultServings, recipe.Servings)
	assert.Equal(t, models.DefaultRecipeImage, recipe.Image)
	assert.Equal(t, user.ID, recipe.UserID)
}

func TestCreateRecipeKeepsExplicitValues(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	user := createTestUser(t, db, "creator")

	req := validCreateRequest("Green Detox")
	req.PrepTime = 15
	req.Servings = 4
	req.Image = "https://example.com/detox.jpg"

	recipe, err := svc.CreateRecipe(context.Background(), user.ID, "creator", req)
	require.NoError(t, err)
	assert.Equal(t, 15, recipe.PrepTime)
	assert.Equal(t, 4, recipe.Servings)
	assert.Equal(t, "https://example.com/detox.jpg", recipe.Image)
}

func TestCreateRecipeValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	user := createTestUser(t, db, "creator")
	ctx := context.Background()

	missingTitle := validCreateRequest("  ")
	_, err := svc.CreateRecipe(ctx, user.ID, "creator", missingTitle)
	assert.ErrorIs(t, err, ErrValidation)

	blankIngredients := validCreateRequest("Berry Blast")
	blankIngredients.Ingredients = models.IngredientList{
		{Amount: " ", Name: "strawberries"},
		{Amount: "1 cup", Name: "  "},
	}
	_, err = svc.CreateRecipe(ctx, user.ID, "creator", blankIngredients)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRecipeDropsBlankIngredientRows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	user := createTestUser(t, db, "creator")

	req := validCreateRequest("Berry Blast")
	req.Ingredients = models.IngredientList{
		{Amount: "1 cup", Name: "strawberries"},
		{Amount: "", Name: ""},
		{Amount: " 1/2 cup ", Name: " blueberries "},
	}

	recipe, err := svc.CreateRecipe(context.Background(), user.ID, "creator", req)
	require.NoError(t, err)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, models.Ingredient{Amount: "1/2 cup", Name: "blueberries"}, recipe.Ingredients[1])
}

func TestListRecipesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	user := createTestUser(t, db, "creator")
	now := time.Now().UTC()

	older := models.Recipe{
		Title: "Older", Description: "d", Directions: "d",
		Ingredients: models.IngredientList{{Amount: "1", Name: "kale"}},
		UserID:      user.ID, CreatedAt: now.Add(-time.Hour),
	}
	newer := models.Recipe{
		Title: "Newer", Description: "d", Directions: "d",
		Ingredients: models.IngredientList{{Amount: "1", Name: "kale"}},
		UserID:      user.ID, CreatedAt: now,
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	recipes, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Newer", recipes[0].Title)
	assert.Equal(t, "Older", recipes[1].Title)
}

func TestUpdateRecipeOwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	owner := createTestUser(t, db, "owner")
	intruder := createTestUser(t, db, "intruder")
	ctx := context.Background()

	recipe, err := svc.CreateRecipe(ctx, owner.ID, "owner", validCreateRequest("Berry Blast"))
	require.NoError(t, err)

	update := &types.UpdateRecipeRequest{
		Title:       "Berry Blast 2",
		Description: "Updated",
		Directions:  "Blend harder.",
		Ingredients: models.IngredientList{{Amount: "2 cups", Name: "strawberries"}},
	}

	_, err = svc.UpdateRecipe(ctx, recipe.ID, intruder.ID, update)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateRecipe(ctx, recipe.ID, owner.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Berry Blast 2", updated.Title)
}

func TestDeleteRecipe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	owner := createTestUser(t, db, "owner")
	intruder := createTestUser(t, db, "intruder")
	ctx := context.Background()

	recipe, err := svc.CreateRecipe(ctx, owner.ID, "owner", validCreateRequest("Berry Blast"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteRecipe(ctx, recipe.ID, intruder.ID), ErrForbidden)
	require.NoError(t, svc.DeleteRecipe(ctx, recipe.ID, owner.ID))

	_, err = svc.GetRecipe(ctx, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRecipeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.GetRecipe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

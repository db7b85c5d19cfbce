package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/blendbase/backend/internal/models"
)

func newRecipeBody(t *testing.T, title string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"title":       title,
		"description": "Test description",
		"directions":  "Blend everything.",
		"prep_time":   5,
		"servings":    2,
		"ingredients": []map[string]string{
			{"amount": "1 cup", "name": "strawberries"},
		},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func insertRecipe(t *testing.T, db *gorm.DB, title string, prepTime int, createdAt time.Time) models.Recipe {
	t.Helper()
	userID, _ := createTestUserAndToken(t, db, "owner-"+title)
	recipe := models.Recipe{
		Title:       title,
		Description: "desc " + title,
		Directions:  "blend",
		PrepTime:    prepTime,
		Servings:    2,
		Ingredients: models.IngredientList{{Amount: "1", Name: "banana"}},
		UserID:      userID,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return recipe
}

func TestCreateRecipe(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := createTestUserAndToken(t, db, "creator")

	req := httptest.NewRequest("POST", "/api/v1/recipes", newRecipeBody(t, "Berry Blast"))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)

	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Berry Blast", created.Title)
	assert.Equal(t, models.DefaultRecipeImage, created.Image)
	assert.Equal(t, "creator", created.CreatedBy)
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("POST", "/api/v1/recipes", newRecipeBody(t, "Berry Blast"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
}

func TestCreateRecipeRejectsBlankIngredients(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := createTestUserAndToken(t, db, "creator")

	body, err := json.Marshal(map[string]interface{}{
		"title":       "Berry Blast",
		"description": "Test description",
		"directions":  "Blend everything.",
		"ingredients": []map[string]string{
			{"amount": "  ", "name": ""},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/recipes", bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}

func TestListRecipesFilters(t *testing.T) {
	router, db := setupTestRouter(t)
	now := time.Now().UTC()
	insertRecipe(t, db, "Berry Blast", 5, now)
	insertRecipe(t, db, "Green Detox", 15, now.Add(-time.Hour))

	req := httptest.NewRequest("GET", "/api/v1/recipes?max_prep_time=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var response struct {
		Recipes []models.Recipe `json:"recipes"`
		Count   int             `json:"count"`
		Total   int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, 2, response.Total)
	require.Len(t, response.Recipes, 1)
	assert.Equal(t, "Berry Blast", response.Recipes[0].Title)
}

func TestListRecipesSearchAndSort(t *testing.T) {
	router, db := setupTestRouter(t)
	now := time.Now().UTC()
	insertRecipe(t, db, "Berry Blast", 5, now)
	insertRecipe(t, db, "Green Detox", 15, now.Add(-time.Hour))
	insertRecipe(t, db, "Green Machine", 8, now.Add(-2*time.Hour))

	req := httptest.NewRequest("GET", "/api/v1/recipes?q=GREEN&sort=quickest", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var response struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Recipes, 2)
	assert.Equal(t, "Green Machine", response.Recipes[0].Title)
	assert.Equal(t, "Green Detox", response.Recipes[1].Title)
}

func TestGetRecipeEnriched(t *testing.T) {
	router, db := setupTestRouter(t)
	recipe := insertRecipe(t, db, "Berry Blast", 5, time.Now().UTC())

	reviewerID, _ := createTestUserAndToken(t, db, "reviewer")
	review := models.Review{
		RecipeID: recipe.ID,
		UserID:   reviewerID,
		Rating:   4,
	}
	require.NoError(t, db.Create(&review).Error)

	req := httptest.NewRequest("GET", "/api/v1/recipes/"+recipe.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var response struct {
		models.Recipe
		AvgRating   float64 `json:"avg_rating"`
		ReviewCount int     `json:"review_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Berry Blast", response.Title)
	assert.Equal(t, 4.0, response.AvgRating)
	assert.Equal(t, 1, response.ReviewCount)
}

func TestGetRecipeNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/recipes/00000000-0000-0000-0000-000000000001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)
}

func TestUpdateRecipeForbiddenForNonOwner(t *testing.T) {
	router, db := setupTestRouter(t)
	recipe := insertRecipe(t, db, "Berry Blast", 5, time.Now().UTC())
	_, intruderToken := createTestUserAndToken(t, db, "intruder")

	req := httptest.NewRequest("PUT", "/api/v1/recipes/"+recipe.ID.String(), newRecipeBody(t, "Stolen"))
	req.Header.Set("Authorization", "Bearer "+intruderToken)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 403, w.Code)

	var unchanged models.Recipe
	require.NoError(t, db.First(&unchanged, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Berry Blast", unchanged.Title)
}

func TestDeleteRecipeByOwner(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := createTestUserAndToken(t, db, "creator")

	req := httptest.NewRequest("POST", "/api/v1/recipes", newRecipeBody(t, "Berry Blast"))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 201, w.Code)

	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req = httptest.NewRequest("DELETE", "/api/v1/recipes/"+created.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDashboardListsOwnRecipesOnly(t *testing.T) {
	router, db := setupTestRouter(t)
	now := time.Now().UTC()
	insertRecipe(t, db, "Someone Elses", 5, now)

	userID, token := createTestUserAndToken(t, db, "dashboarder")
	mine := models.Recipe{
		Title:       "My Smoothie",
		Description: "mine",
		Directions:  "blend",
		Ingredients: models.IngredientList{{Amount: "1", Name: "mango"}},
		UserID:      userID,
		CreatedAt:   now,
	}
	require.NoError(t, db.Create(&mine).Error)

	req := httptest.NewRequest("GET", "/api/v1/dashboard/recipes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var response struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Recipes, 1)
	assert.Equal(t, "My Smoothie", response.Recipes[0].Title)
}

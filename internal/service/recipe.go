package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blendbase/backend/internal/models"
	"github.com/blendbase/backend/internal/types"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)

// Creation defaults applied when the caller leaves the field unset.
const (
	DefaultPrepTime = 5
	DefaultServings = 2
)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns all recipes ordered by creation time descending.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListUserRecipes returns the recipes owned by a user, newest first.
func (s *RecipeService) ListUserRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe validates the request, applies creation defaults and
// inserts the recipe for the given owner.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, createdBy string, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	ingredients, err := validateRecipeFields(req.Title, req.Description, req.Directions, req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Directions:  strings.TrimSpace(req.Directions),
		Image:       req.Image,
		PrepTime:    req.PrepTime,
		Servings:    req.Servings,
		Ingredients: ingredients,
		UserID:      userID,
		CreatedBy:   createdBy,
	}
	if recipe.Image == "" {
		recipe.Image = models.DefaultRecipeImage
	}
	if recipe.PrepTime == 0 {
		recipe.PrepTime = DefaultPrepTime
	}
	if recipe.Servings == 0 {
		recipe.Servings = DefaultServings
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe updates a recipe. Only the owner may update; anyone else
// gets ErrForbidden rather than a silent success.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, userID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	ingredients, err := validateRecipeFields(req.Title, req.Description, req.Directions, req.Ingredients)
	if err != nil {
		return nil, err
	}

	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{
		"title":       strings.TrimSpace(req.Title),
		"description": strings.TrimSpace(req.Description),
		"directions":  strings.TrimSpace(req.Directions),
		"image":       req.Image,
		"prep_time":   req.PrepTime,
		"servings":    req.Servings,
		"ingredients": ingredients,
	}
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes an owned recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}

// validateRecipeFields checks the required text fields and drops
// ingredient rows that are blank after trimming. At least one complete
// ingredient must remain.
func validateRecipeFields(title, description, directions string, ingredients models.IngredientList) (models.IngredientList, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" || strings.TrimSpace(directions) == "" {
		return nil, fmt.Errorf("%w: title, description and directions are required", ErrValidation)
	}

	valid := make(models.IngredientList, 0, len(ingredients))
	for _, ing := range ingredients {
		amount := strings.TrimSpace(ing.Amount)
		name := strings.TrimSpace(ing.Name)
		if amount == "" || name == "" {
			continue
		}
		valid = append(valid, models.Ingredient{Amount: amount, Name: name})
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrValidation)
	}
	return valid, nil
}

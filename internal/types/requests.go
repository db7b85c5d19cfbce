package types

import "github.com/blendbase/backend/internal/models"

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description" binding:"required"`
	Directions  string                `json:"directions" binding:"required"`
	Image       string                `json:"image"`
	PrepTime    int                   `json:"prep_time"`
	Servings    int                   `json:"servings"`
	Ingredients models.IngredientList `json:"ingredients" binding:"required"`
}

// UpdateRecipeRequest represents the request body for updating a recipe
type UpdateRecipeRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description" binding:"required"`
	Directions  string                `json:"directions" binding:"required"`
	Image       string                `json:"image"`
	PrepTime    int                   `json:"prep_time"`
	Servings    int                   `json:"servings"`
	Ingredients models.IngredientList `json:"ingredients" binding:"required"`
}

// SubmitReviewRequest represents the request body for submitting a review
type SubmitReviewRequest struct {
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text"`
}

// UpsertRatingRequest represents the request body for the star-only rating
type UpsertRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/blendbase/backend/internal/models"
	"github.com/blendbase/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(email, password, username string) (string, error)
	Login(email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	ListUserRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, userID uuid.UUID, createdBy string, req *types.CreateRecipeRequest) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id, userID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error
}

// IReviewService defines the interface for review and rating operations
type IReviewService interface {
	ListReviews(ctx context.Context, recipeID *uuid.UUID) ([]models.Review, error)
	SubmitReview(ctx context.Context, recipeID, userID uuid.UUID, rating int, text, userName string) (*models.Review, error)
	UpsertRating(ctx context.Context, recipeID, userID uuid.UUID, rating int) error
}

// IImageService defines the interface for image storage operations
type IImageService interface {
	UploadRecipeImage(ctx context.Context, imageData []byte, originalName string) (string, error)
}

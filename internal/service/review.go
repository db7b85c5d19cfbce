package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/blendbase/backend/internal/models"
)

// ReviewService handles review and rating operations.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ListReviews returns every review, or the reviews for one recipe when
// recipeID is non-nil, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, recipeID *uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	query := s.db.WithContext(ctx)
	if recipeID != nil {
		query = query.Where("recipe_id = ?", *recipeID)
	}
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// SubmitReview inserts or replaces the caller's review of a recipe.
// The upsert is keyed on the (recipe_id, user_id) unique index, so a
// double submission can never produce two rows.
func (s *ReviewService) SubmitReview(ctx context.Context, recipeID, userID uuid.UUID, rating int, text, userName string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return nil, err
	}

	review := models.Review{
		RecipeID:   recipeID,
		UserID:     userID,
		Rating:     rating,
		ReviewText: strings.TrimSpace(text),
		UserName:   userName,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "review_text", "user_name", "updated_at"}),
	}).Create(&review).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the surviving row, not the candidate.
	var saved models.Review
	if err := s.db.WithContext(ctx).Where("recipe_id = ? AND user_id = ?", recipeID, userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpsertRating records the caller's star-only rating of a recipe.
func (s *ReviewService) UpsertRating(ctx context.Context, recipeID, userID uuid.UUID, rating int) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return err
	}

	record := models.Rating{
		RecipeID: recipeID,
		UserID:   userID,
		Rating:   rating,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(&record).Error
}

func (s *ReviewService) recipeExists(ctx context.Context, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Select("id").First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

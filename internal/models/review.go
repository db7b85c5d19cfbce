package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a star rating with optional text. A user gets at most one
// review per recipe; submissions upsert over the composite index.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_recipe_user" json:"recipe_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_recipe_user" json:"user_id"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText string    `gorm:"type:text" json:"review_text"`
	UserName   string    `gorm:"size:255" json:"user_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Rating is the star-only record, decoupled from written reviews.
type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_recipe_user" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_recipe_user" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

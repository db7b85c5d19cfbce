package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRecipeImage is used when a recipe is created without an image.
const DefaultRecipeImage = "https://images.unsplash.com/photo-1505252585461-04db1eb84625?w=800"

// Ingredient is a single entry in a recipe's ingredient list.
type Ingredient struct {
	Amount string `json:"amount"`
	Name   string `json:"name"`
}

// IngredientList is a custom type for handling ingredient arrays in JSONB.
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface. Legacy rows may hold the
// list double-encoded as a JSON string; both shapes decode to the same
// canonical slice so the ambiguity never leaves the storage boundary.
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if err := json.Unmarshal(bytes, l); err == nil {
		return nil
	}

	var encoded string
	if err := json.Unmarshal(bytes, &encoded); err != nil {
		*l = IngredientList{}
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), l); err != nil {
		*l = IngredientList{}
	}
	return nil
}

type Recipe struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Directions  string         `gorm:"type:text;not null" json:"directions"`
	Image       string         `gorm:"size:255" json:"image"`
	PrepTime    int            `json:"prep_time"`
	Servings    int            `json:"servings"`
	Ingredients IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedBy   string         `gorm:"size:255" json:"created_by"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

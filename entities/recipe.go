package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Slug           string     `gorm:"uniqueIndex;not null" json:"slug"`
	RecipeName     string     `gorm:"uniqueIndex;not null" json:"recipe_name"`
	Description    string     `gorm:"type:text" json:"description"`
	PrepTime       string     `json:"prep_time"`
	CookTime       string     `json:"cook_time"`
	Ingredients    StringList `gorm:"type:text" json:"ingredients"`
	Instructions   StringList `gorm:"type:text" json:"instructions"`
	ImageKey       string     `json:"image_key,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	Source         string     `gorm:"default:user" json:"source"` // "user" or "daily"
	HitCount       int64      `gorm:"default:0" json:"hit_count"`
	LastAccessedAt *time.Time `gorm:"type:timestamp" json:"last_accessed_at,omitempty"`

	Timestamp
}

type RecipeCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_category" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_category" json:"category_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
}

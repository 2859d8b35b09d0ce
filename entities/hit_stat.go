package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecipeHitStat is a per-day view counter bucket. RecipeID may be a synthetic
// id derived from the recipe name when the recipe only exists on the AI side,
// so there is deliberately no foreign key to recipes.
type RecipeHitStat struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_hit_day" json:"recipe_id"`
	HitDate       time.Time `gorm:"type:date;uniqueIndex:idx_recipe_hit_day" json:"hit_date"`
	HitCount      int64     `gorm:"default:0" json:"hit_count"`
	RecipeName    string    `json:"recipe_name,omitempty"`
	IsAiGenerated bool      `gorm:"default:false" json:"is_ai_generated"`
	CreatedAt     time.Time `gorm:"type:timestamp" json:"created_at"`
}

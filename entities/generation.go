package entities

import (
	"time"

	"github.com/google/uuid"
)

// Generation is an append-only audit record of one ingredient-text to
// selected-recipe generation event.
type Generation struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientsText  string    `gorm:"type:text" json:"ingredients_text"`
	SelectedRecipeID uuid.UUID `gorm:"type:uuid" json:"selected_recipe_id"`
	CreatedAt        time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:SelectedRecipeID"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

type DailyRecommendation struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecommendDate time.Time `gorm:"type:date;uniqueIndex" json:"recommend_date"`
	RecipeID      uuid.UUID `gorm:"type:uuid" json:"recipe_id"`
	CreatedAt     time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

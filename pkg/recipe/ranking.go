package recipe

import (
	"AI-Recipe-Backend/domain"
	"time"

	"github.com/google/uuid"
)

// Ranking variants share one query shape: LEFT JOIN the per-day hit buckets,
// aggregate a score per recipe, order by score then recency. The LEFT JOIN is
// deliberate so a recipe with no recent hits stays listed with score 0 instead
// of disappearing.
type rankVariant struct {
	windowDays      int     // restrict buckets to the trailing N days; 0 means lifetime
	decayBase       float64 // weight buckets by decayBase^age; 0 means unweighted
	decayWindowDays int     // age cutoff for decayed scoring
}

const (
	weightedDecayBase  = 0.85
	weightedWindowDays = 180
)

var rankVariants = map[string]rankVariant{
	domain.SortPopular:  {},
	domain.SortWeek:     {windowDays: 7},
	domain.SortRecent:   {windowDays: 30},
	domain.SortWeighted: {decayBase: weightedDecayBase, decayWindowDays: weightedWindowDays},
}

func resolveRankVariant(sort string) (rankVariant, bool) {
	v, ok := rankVariants[sort]
	return v, ok
}

// joinSQL builds the hit-stat join for this variant; time windows constrain
// the join, never the recipe set.
func (v rankVariant) joinSQL() (string, []interface{}) {
	switch {
	case v.windowDays > 0:
		return "LEFT JOIN recipe_hit_stats s ON s.recipe_id = recipes.id AND s.hit_date >= CURRENT_DATE - ?",
			[]interface{}{v.windowDays}
	case v.decayWindowDays > 0:
		return "LEFT JOIN recipe_hit_stats s ON s.recipe_id = recipes.id AND s.hit_date >= CURRENT_DATE - ?",
			[]interface{}{v.decayWindowDays}
	default:
		return "LEFT JOIN recipe_hit_stats s ON s.recipe_id = recipes.id", nil
	}
}

func (v rankVariant) scoreSQL() (string, []interface{}) {
	if v.decayBase > 0 {
		return "COALESCE(SUM(s.hit_count * POWER(?, CURRENT_DATE - s.hit_date)), 0)",
			[]interface{}{v.decayBase}
	}
	return "COALESCE(SUM(s.hit_count), 0)", nil
}

// RankedRecipe is the typed projection returned by the ranking queries.
type RankedRecipe struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	RecipeName  string    `json:"recipe_name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Source      string    `json:"source"`
	HitCount    int64     `json:"hit_count"`
	CreatedAt   time.Time `json:"created_at"`
	Score       float64   `json:"score"`
}

const rankedColumns = "recipes.id, recipes.slug, recipes.recipe_name, recipes.description, " +
	"recipes.image_url, recipes.source, recipes.hit_count, recipes.created_at"

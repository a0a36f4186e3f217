package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a user-authored dish with its taxonomy and ingredient list.
type Recipe struct {
	ID             uuid.UUID           `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Instructions   string              `json:"instructions"`
	Time           int                 `json:"time"` // Preparation time in minutes.
	Thumb          string              `json:"thumb,omitempty"`
	OwnerID        uuid.UUID           `json:"owner_id"`
	Owner          *User               `json:"owner,omitempty"`
	CategoryID     uuid.UUID           `json:"category_id"`
	Category       *Category           `json:"category,omitempty"`
	AreaID         uuid.UUID           `json:"area_id"`
	Area           *Area               `json:"area,omitempty"`
	Ingredients    []*RecipeIngredient `json:"ingredients"`
	FavoritesCount int64               `json:"favorites_count,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// IsOwnedBy reports whether the recipe was created by userID.
func (r *Recipe) IsOwnedBy(userID uuid.UUID) bool {
	return r.OwnerID == userID
}

// RecipeIngredient links an ingredient to a recipe with a free-form measure.
type RecipeIngredient struct {
	IngredientID uuid.UUID   `json:"ingredient_id"`
	Ingredient   *Ingredient `json:"ingredient,omitempty"`
	Measure      string      `json:"measure"`
}

// RecipeFilter narrows a recipe search. Empty fields are not applied.
type RecipeFilter struct {
	Category   string
	Ingredient string
	Area       string
}

// IsEmpty reports whether no filter is set.
func (f RecipeFilter) IsEmpty() bool {
	return f.Category == "" && f.Ingredient == "" && f.Area == ""
}

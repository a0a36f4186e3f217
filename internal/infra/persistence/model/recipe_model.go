package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	Instructions string    `gorm:"type:text;not null"`
	Time         int       `gorm:"not null;default:0"`
	Thumb        *string   `gorm:"type:varchar(512)"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AreaID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Owner       *UserModel               `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Category    *CategoryModel           `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Area        *AreaModel               `gorm:"foreignKey:AreaID;constraint:OnDelete:RESTRICT"`
	Ingredients []*RecipeIngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`

	// FavoritesCount is filled by aggregate queries only.
	FavoritesCount int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

func (m *RecipeModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// RecipeIngredientModel mirrors the 'recipe_ingredients' join table.
type RecipeIngredientModel struct {
	RecipeID     uuid.UUID        `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID        `gorm:"type:uuid;primaryKey;index"`
	Measure      string           `gorm:"type:varchar(150);not null;default:''"`
	Ingredient   *IngredientModel `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// AreaModel mirrors the 'areas' table.
type AreaModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_areas_name"`
}

// TableName explicitly sets the table name for GORM.
func (AreaModel) TableName() string {
	return "areas"
}

func (m *AreaModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// IngredientModel mirrors the 'ingredients' table.
type IngredientModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_ingredients_name"`
	Description string    `gorm:"type:text;not null;default:''"`
	ImgURL      string    `gorm:"column:img_url;type:varchar(512);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

func (m *IngredientModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// TestimonialModel mirrors the 'testimonials' table.
type TestimonialModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Testimonial string     `gorm:"type:text;not null"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	User        *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TestimonialModel) TableName() string {
	return "testimonials"
}

func (m *TestimonialModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := newID()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups recipes by dish type, e.g. "Dessert".
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Area groups recipes by cuisine origin, e.g. "Italian".
type Area struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Ingredient is a reusable component referenced by recipes.
type Ingredient struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImgURL      string    `json:"img_url"`
}

// Testimonial is a short user quote shown on the landing page.
type Testimonial struct {
	ID          uuid.UUID `json:"id"`
	Testimonial string    `json:"testimonial"`
	UserID      uuid.UUID `json:"user_id"`
	User        *User     `json:"user,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

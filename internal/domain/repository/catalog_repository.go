package repository

import (
	"context"

	"foodies/internal/domain/entity"
)

// CatalogRepository serves the read-only taxonomy tables.
type CatalogRepository interface {
	FindAreas(ctx context.Context, page entity.Page) ([]*entity.Area, error)
	FindCategories(ctx context.Context, page entity.Page) ([]*entity.Category, error)
	FindIngredients(ctx context.Context, page entity.Page) ([]*entity.Ingredient, error)

	// FindTestimonials lists testimonials with their authors, newest first.
	FindTestimonials(ctx context.Context, page entity.Page) ([]*entity.Testimonial, error)
}

package usecase

import (
	"context"

	"foodies/internal/domain/entity"
)

// CatalogUsecase lists the taxonomy and landing page content.
type CatalogUsecase interface {
	ListAreas(ctx context.Context, page entity.Page) ([]*entity.Area, error)
	ListCategories(ctx context.Context, page entity.Page) ([]*entity.Category, error)
	ListIngredients(ctx context.Context, page entity.Page) ([]*entity.Ingredient, error)
	ListTestimonials(ctx context.Context, page entity.Page) ([]*entity.Testimonial, error)
}

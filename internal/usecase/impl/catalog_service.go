package impl

import (
	"context"

	"foodies/internal/domain/entity"
	"foodies/internal/domain/repository"
	"foodies/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: catalogRepo}
}

func (srv *catalogService) ListAreas(ctx context.Context, page entity.Page) ([]*entity.Area, error) {
	areas, err := srv.catalogRepo.FindAreas(ctx, page)

	return areas, errors.Wrap(err, "failed to list areas")
}

func (srv *catalogService) ListCategories(ctx context.Context, page entity.Page) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.FindCategories(ctx, page)

	return categories, errors.Wrap(err, "failed to list categories")
}

func (srv *catalogService) ListIngredients(ctx context.Context, page entity.Page) ([]*entity.Ingredient, error) {
	ingredients, err := srv.catalogRepo.FindIngredients(ctx, page)

	return ingredients, errors.Wrap(err, "failed to list ingredients")
}

func (srv *catalogService) ListTestimonials(ctx context.Context, page entity.Page) ([]*entity.Testimonial, error) {
	testimonials, err := srv.catalogRepo.FindTestimonials(ctx, page)

	return testimonials, errors.Wrap(err, "failed to list testimonials")
}

package postgres

import (
	"context"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	"foodies/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) FindAreas(ctx context.Context, page entity.Page) ([]*entity.Area, error) {
	var areaMs []*model.AreaModel
	if err := repo.paged(ctx, page).Order("name ASC").Find(&areaMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list areas")
	}

	areas := make([]*entity.Area, 0, len(areaMs))
	for _, areaM := range areaMs {
		areas = append(areas, toAreaDomain(areaM))
	}

	return areas, nil
}

func (repo *catalogRepository) FindCategories(ctx context.Context, page entity.Page) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel
	if err := repo.paged(ctx, page).Order("name ASC").Find(&categoryMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *catalogRepository) FindIngredients(ctx context.Context, page entity.Page) ([]*entity.Ingredient, error) {
	var ingredientMs []*model.IngredientModel
	if err := repo.paged(ctx, page).Order("name ASC").Find(&ingredientMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientMs))
	for _, ingredientM := range ingredientMs {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients, nil
}

func (repo *catalogRepository) FindTestimonials(ctx context.Context, page entity.Page) ([]*entity.Testimonial, error) {
	var testimonialMs []*model.TestimonialModel
	err := repo.paged(ctx, page).
		Preload("User").
		Order("created_at DESC").
		Order("id ASC").
		Find(&testimonialMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list testimonials")
	}

	testimonials := make([]*entity.Testimonial, 0, len(testimonialMs))
	for _, testimonialM := range testimonialMs {
		testimonials = append(testimonials, &entity.Testimonial{
			ID:          testimonialM.ID,
			Testimonial: testimonialM.Testimonial,
			UserID:      testimonialM.UserID,
			User:        toUserDomain(testimonialM.User),
			CreatedAt:   testimonialM.CreatedAt,
		})
	}

	return testimonials, nil
}

func (repo *catalogRepository) paged(ctx context.Context, page entity.Page) *gorm.DB {
	return repo.db.WithContext(ctx).Offset(page.Skip).Limit(page.Limit)
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{ID: data.ID, Name: data.Name}
}

func toAreaDomain(data *model.AreaModel) *entity.Area {
	if data == nil {
		return nil
	}

	return &entity.Area{ID: data.ID, Name: data.Name}
}

func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	if data == nil {
		return nil
	}

	return &entity.Ingredient{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ImgURL:      data.ImgURL,
	}
}

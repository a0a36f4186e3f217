package postgres

import (
	"context"
	"strings"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	"foodies/internal/errors"
	"foodies/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recipeColumns = "recipes.*, " +
	"(SELECT COUNT(*) FROM user_favorite_recipes fc WHERE fc.recipe_id = recipes.id) AS favorites_count"

// likeEscaper escapes LIKE wildcards so user input only matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// recipeRepository implements the domain.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// recipeQuery selects recipes with their favorite count and taxonomy preloaded.
func recipeQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.RecipeModel{}).
		Select(recipeColumns).
		Preload("Category").
		Preload("Area").
		Preload("Ingredients.Ingredient")
}

func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	err := recipeQuery(repo.db.WithContext(ctx)).
		Preload("Owner").
		Where("recipes.id = ?", id).
		First(&recipeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

func (repo *recipeRepository) Search(ctx context.Context, filter entity.RecipeFilter, page entity.Page) ([]*entity.Recipe, error) {
	query := recipeQuery(repo.db.WithContext(ctx))
	if filter.Category != "" {
		query = query.Where(
			`EXISTS (SELECT 1 FROM categories c WHERE c.id = recipes.category_id AND c.name ILIKE ? ESCAPE '\')`,
			containsPattern(filter.Category),
		)
	}
	if filter.Area != "" {
		query = query.Where(
			`EXISTS (SELECT 1 FROM areas a WHERE a.id = recipes.area_id AND a.name ILIKE ? ESCAPE '\')`,
			containsPattern(filter.Area),
		)
	}
	if filter.Ingredient != "" {
		query = query.Where(
			`EXISTS (SELECT 1 FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id `+
				`WHERE ri.recipe_id = recipes.id AND i.name ILIKE ? ESCAPE '\')`,
			containsPattern(filter.Ingredient),
		)
	}

	var recipeMs []*model.RecipeModel
	err := query.
		Order("recipes.created_at DESC").
		Order("recipes.id ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&recipeMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search recipes")
	}

	return toRecipesDomain(recipeMs), nil
}

// FindPopular ranks every recipe, including ones nobody has favorited yet.
func (repo *recipeRepository) FindPopular(ctx context.Context, page entity.Page) ([]*entity.Recipe, error) {
	var recipeMs []*model.RecipeModel
	err := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Select("recipes.*, COUNT(f.recipe_id) AS favorites_count").
		Joins("LEFT JOIN user_favorite_recipes f ON f.recipe_id = recipes.id").
		Group("recipes.id").
		Order("favorites_count DESC").
		Order("recipes.id ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Preload("Category").
		Preload("Area").
		Preload("Ingredients.Ingredient").
		Find(&recipeMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list popular recipes")
	}

	return toRecipesDomain(recipeMs), nil
}

func (repo *recipeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, page entity.Page) ([]*entity.Recipe, error) {
	var recipeMs []*model.RecipeModel
	err := recipeQuery(repo.db.WithContext(ctx)).
		Where("recipes.owner_id = ?", ownerID).
		Order("recipes.created_at DESC").
		Order("recipes.id ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&recipeMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list own recipes")
	}

	return toRecipesDomain(recipeMs), nil
}

func (repo *recipeRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count recipes")
	}

	return count, nil
}

// Create inserts the recipe and its ingredient lines in one statement batch.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)
	err := repo.db.WithContext(ctx).
		Omit("Owner", "Category", "Area").
		Create(recipeM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeReferenceMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

func (repo *recipeRepository) UpdateThumb(ctx context.Context, id uuid.UUID, thumb string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", id).
		Update("thumb", optionalString(thumb))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recipe thumb")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Delete removes the recipe. Ingredient lines and favorites cascade.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}

	return result.RowsAffected > 0, nil
}

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// --- Mapper Functions ---

func toRecipesDomain(data []*model.RecipeModel) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0, len(data))
	for _, recipeM := range data {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes
}

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	recipe := &entity.Recipe{
		ID:             data.ID,
		Title:          data.Title,
		Description:    data.Description,
		Instructions:   data.Instructions,
		Time:           data.Time,
		Thumb:          derefString(data.Thumb),
		OwnerID:        data.OwnerID,
		Owner:          toUserDomain(data.Owner),
		CategoryID:     data.CategoryID,
		Category:       toCategoryDomain(data.Category),
		AreaID:         data.AreaID,
		Area:           toAreaDomain(data.Area),
		Ingredients:    make([]*entity.RecipeIngredient, 0, len(data.Ingredients)),
		FavoritesCount: data.FavoritesCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	for _, line := range data.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, &entity.RecipeIngredient{
			IngredientID: line.IngredientID,
			Ingredient:   toIngredientDomain(line.Ingredient),
			Measure:      line.Measure,
		})
	}

	return recipe
}

func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	recipeM := &model.RecipeModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Instructions: data.Instructions,
		Time:         data.Time,
		Thumb:        optionalString(data.Thumb),
		OwnerID:      data.OwnerID,
		CategoryID:   data.CategoryID,
		AreaID:       data.AreaID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Ingredients:  make([]*model.RecipeIngredientModel, 0, len(data.Ingredients)),
	}
	for _, line := range data.Ingredients {
		recipeM.Ingredients = append(recipeM.Ingredients, &model.RecipeIngredientModel{
			IngredientID: line.IngredientID,
			Measure:      line.Measure,
		})
	}

	return recipeM
}

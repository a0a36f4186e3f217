package usecase

import (
	"context"

	"foodies/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipeIngredientInput is one ingredient line of a new recipe.
type RecipeIngredientInput struct {
	IngredientID uuid.UUID
	Measure      string
}

// CreateRecipeInput defines the data required to publish a recipe.
type CreateRecipeInput struct {
	Title        string
	Description  string
	Instructions string
	Time         int
	CategoryID   uuid.UUID
	AreaID       uuid.UUID
	Ingredients  []RecipeIngredientInput
	Thumb        *UploadInput // Optional.
}

// RecipeUsecase defines recipe browsing and authoring.
type RecipeUsecase interface {
	Search(ctx context.Context, filter entity.RecipeFilter, page entity.Page) ([]*entity.Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	ListPopular(ctx context.Context, page entity.Page) ([]*entity.Recipe, error)
	ListOwn(ctx context.Context, ownerID uuid.UUID, page entity.Page) ([]*entity.Recipe, error)
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateRecipeInput) (*entity.Recipe, error)

	// Delete removes a recipe owned by userID.
	Delete(ctx context.Context, userID, recipeID uuid.UUID) error
}

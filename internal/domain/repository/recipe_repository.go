package repository

import (
	"context"
	"errors"

	"foodies/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRecipeNotFound is returned when a recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrRecipeReferenceMissing is returned when a recipe references an unknown category, area or ingredient.
	ErrRecipeReferenceMissing = errors.New("recipe references a missing category, area or ingredient")
)

// RecipeRepository defines persistence and query operations for recipes.
type RecipeRepository interface {
	// FindByID retrieves a recipe with its category, area and ingredients.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// Search matches category, ingredient and area names case-insensitively by substring.
	// Set filters are combined with AND.
	Search(ctx context.Context, filter entity.RecipeFilter, page entity.Page) ([]*entity.Recipe, error)

	// FindPopular orders recipes by favorite count descending, then by id ascending.
	FindPopular(ctx context.Context, page entity.Page) ([]*entity.Recipe, error)

	// FindByOwner lists the recipes created by ownerID, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, page entity.Page) ([]*entity.Recipe, error)

	// CountByOwner returns the number of recipes created by ownerID.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Create persists a recipe together with its ingredient lines.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// UpdateThumb sets the thumbnail URL of a recipe.
	UpdateThumb(ctx context.Context, id uuid.UUID, thumb string) error

	// Delete removes a recipe and reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

package impl

import (
	"context"
	"testing"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	mockRepo "foodies/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Lists(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	srv := NewCatalogService(repo)
	ctx := context.Background()
	page := entity.NewPage(0, 0, 0)

	repo.EXPECT().FindAreas(ctx, page).Return([]*entity.Area{{Name: "Italian"}}, nil)
	repo.EXPECT().FindCategories(ctx, page).Return([]*entity.Category{{Name: "Dessert"}}, nil)
	repo.EXPECT().FindIngredients(ctx, page).Return([]*entity.Ingredient{{Name: "Sugar"}}, nil)
	repo.EXPECT().FindTestimonials(ctx, page).Return([]*entity.Testimonial{{Testimonial: "Great", UserID: uuid.New()}}, nil)

	areas, err := srv.ListAreas(ctx, page)
	require.NoError(t, err)
	assert.Len(t, areas, 1)

	categories, err := srv.ListCategories(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, "Dessert", categories[0].Name)

	ingredients, err := srv.ListIngredients(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, "Sugar", ingredients[0].Name)

	testimonials, err := srv.ListTestimonials(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, "Great", testimonials[0].Testimonial)
}

func TestCatalogService_PropagatesErrors(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	srv := NewCatalogService(repo)
	ctx := context.Background()
	page := entity.NewPage(0, 0, 0)
	dbErr := domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to list areas")
	repo.EXPECT().FindAreas(ctx, page).Return(nil, dbErr)

	_, err := srv.ListAreas(ctx, page)

	assert.ErrorIs(t, err, assert.AnError)
}

package impl

import (
	"context"
	"strings"
	"testing"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	mockRepo "foodies/internal/mocks/repository"
	mockSvc "foodies/internal/mocks/service"
	"foodies/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeFixture struct {
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	recipeRepo *mockRepo.MockRecipeRepository
	uploader   *mockSvc.MockObjectUploader
	service    usecase.RecipeUsecase
}

func newRecipeFixture(t *testing.T) *recipeFixture {
	f := &recipeFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		recipeRepo: mockRepo.NewMockRecipeRepository(t),
		uploader:   mockSvc.NewMockObjectUploader(t),
	}
	srv, err := NewRecipeService(RecipeServiceParams{
		TxManager:  f.txManager,
		RecipeRepo: f.recipeRepo,
		Uploader:   f.uploader,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})
	require.NoError(t, err)
	f.service = srv

	return f
}

func (f *recipeFixture) expectRecipeTx(t *testing.T) {
	expectTransaction(t, f.txManager, f.factory)
	f.factory.EXPECT().RecipeRepo().Return(f.recipeRepo)
}

func TestRecipeService_Search_TrimsFilters(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()
	page := entity.NewPage(0, 0, 10)
	dessert := []*entity.Recipe{{ID: uuid.New(), Category: &entity.Category{Name: "Dessert"}}}

	f.recipeRepo.EXPECT().Search(ctx, entity.RecipeFilter{Category: "dessert"}, page).Return(dessert, nil)

	recipes, err := f.service.Search(ctx, entity.RecipeFilter{Category: "  dessert "}, page)

	require.NoError(t, err)
	assert.Equal(t, dessert, recipes)
}

func TestRecipeService_Search_EmptyIsNotAnError(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()
	f.recipeRepo.EXPECT().Search(ctx, mock.Anything, mock.Anything).Return([]*entity.Recipe{}, nil)

	recipes, err := f.service.Search(ctx, entity.RecipeFilter{Area: "atlantis"}, entity.NewPage(0, 0, 10))

	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestRecipeService_GetByID_NotFound(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()
	id := uuid.New()
	f.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecipeNotFound)

	_, err := f.service.GetByID(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_ListPopularAndOwn(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()
	page := entity.NewPage(0, 0, 0)
	ownerID := uuid.New()
	popular := []*entity.Recipe{{ID: uuid.New(), FavoritesCount: 3}}
	own := []*entity.Recipe{{ID: uuid.New(), OwnerID: ownerID}}

	f.recipeRepo.EXPECT().FindPopular(ctx, page).Return(popular, nil)
	f.recipeRepo.EXPECT().FindByOwner(ctx, ownerID, page).Return(own, nil)

	got, err := f.service.ListPopular(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, popular, got)

	got, err = f.service.ListOwn(ctx, ownerID, page)
	require.NoError(t, err)
	assert.Equal(t, own, got)
}

func TestRecipeService_Create_WithThumb(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()
	ingredientID := uuid.New()
	body := strings.NewReader("jpeg")
	f.expectRecipeTx(t)

	f.recipeRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Recipe) bool {
			return r.OwnerID == ownerID && r.Title == "Pancakes" && len(r.Ingredients) == 1 &&
				r.Ingredients[0].IngredientID == ingredientID && r.Ingredients[0].Measure == "2 cups"
		})).
		Run(func(_ context.Context, r *entity.Recipe) { r.ID = recipeID }).
		Return(nil)
	f.uploader.EXPECT().Upload(ctx, "recipes/"+recipeID.String()+".jpg", "image/jpeg", body).Return("https://cdn/recipes/x.jpg", nil)
	f.recipeRepo.EXPECT().UpdateThumb(ctx, recipeID, "https://cdn/recipes/x.jpg").Return(nil)

	recipe, err := f.service.Create(ctx, ownerID, &usecase.CreateRecipeInput{
		Title:       " Pancakes ",
		Ingredients: []usecase.RecipeIngredientInput{{IngredientID: ingredientID, Measure: " 2 cups"}},
		Thumb:       &usecase.UploadInput{ContentType: "image/jpeg; charset=binary", Size: 4, Body: body},
	})

	require.NoError(t, err)
	assert.Equal(t, recipeID, recipe.ID)
	assert.Equal(t, "https://cdn/recipes/x.jpg", recipe.Thumb)
}

func TestRecipeService_Create_Failures(t *testing.T) {
	t.Run("unknown reference", func(t *testing.T) {
		f := newRecipeFixture(t)
		ctx := context.Background()
		f.expectRecipeTx(t)
		f.recipeRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrRecipeReferenceMissing)

		_, err := f.service.Create(ctx, uuid.New(), &usecase.CreateRecipeInput{Title: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrReferenceNotFound)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("upload failure rolls back", func(t *testing.T) {
		f := newRecipeFixture(t)
		ctx := context.Background()
		f.expectRecipeTx(t)
		f.recipeRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		f.uploader.EXPECT().Upload(ctx, mock.Anything, "image/png", mock.Anything).Return("", errors.New("bucket gone"))

		_, err := f.service.Create(ctx, uuid.New(), &usecase.CreateRecipeInput{
			Title: "x",
			Thumb: &usecase.UploadInput{ContentType: "image/png", Size: 1, Body: strings.NewReader("p")},
		})

		assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	})

	t.Run("duplicate ingredient rejected before writing", func(t *testing.T) {
		f := newRecipeFixture(t)
		salt := uuid.New()

		_, err := f.service.Create(context.Background(), uuid.New(), &usecase.CreateRecipeInput{
			Title: "x",
			Ingredients: []usecase.RecipeIngredientInput{
				{IngredientID: salt, Measure: "1 tsp"},
				{IngredientID: uuid.New(), Measure: "2"},
				{IngredientID: salt, Measure: "pinch"},
			},
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("thumb validated before writing", func(t *testing.T) {
		f := newRecipeFixture(t)

		_, err := f.service.Create(context.Background(), uuid.New(), &usecase.CreateRecipeInput{
			Title: "x",
			Thumb: &usecase.UploadInput{ContentType: "text/plain", Size: 1, Body: strings.NewReader("p")},
		})

		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMedia)
	})
}

func TestRecipeService_Delete(t *testing.T) {
	ownerID := uuid.New()
	recipeID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		f := newRecipeFixture(t)
		ctx := context.Background()
		f.expectRecipeTx(t)
		f.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(&entity.Recipe{ID: recipeID, OwnerID: ownerID}, nil)
		f.recipeRepo.EXPECT().Delete(ctx, recipeID).Return(true, nil)

		require.NoError(t, f.service.Delete(ctx, ownerID, recipeID))
	})

	t.Run("someone else", func(t *testing.T) {
		f := newRecipeFixture(t)
		ctx := context.Background()
		f.expectRecipeTx(t)
		f.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(&entity.Recipe{ID: recipeID, OwnerID: ownerID}, nil)

		err := f.service.Delete(ctx, uuid.New(), recipeID)

		assert.ErrorIs(t, err, domainerrors.ErrNotRecipeOwner)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		f := newRecipeFixture(t)
		ctx := context.Background()
		f.expectRecipeTx(t)
		f.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(nil, repository.ErrRecipeNotFound)

		err := f.service.Delete(ctx, ownerID, recipeID)

		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	})
}

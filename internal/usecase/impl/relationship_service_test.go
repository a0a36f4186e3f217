package impl

import (
	"context"
	"testing"
	"time"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	mockRepo "foodies/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type relationshipFixture struct {
	userRepo   *mockRepo.MockUserRepository
	recipeRepo *mockRepo.MockRecipeRepository
	relRepo    *mockRepo.MockRelationshipRepository
	service    *relationshipService
}

func newRelationshipFixture(t *testing.T) *relationshipFixture {
	f := &relationshipFixture{
		userRepo:   mockRepo.NewMockUserRepository(t),
		recipeRepo: mockRepo.NewMockRecipeRepository(t),
		relRepo:    mockRepo.NewMockRelationshipRepository(t),
	}
	f.service = NewRelationshipService(RelationshipServiceParams{
		UserRepo:         f.userRepo,
		RecipeRepo:       f.recipeRepo,
		RelationshipRepo: f.relRepo,
		Logger:           newDiscardLogger(),
	}).(*relationshipService)
	f.service.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return f
}

func TestRelationshipService_Follow_SelfIsRejected(t *testing.T) {
	f := newRelationshipFixture(t)
	id := uuid.New()

	err := f.service.Follow(context.Background(), id, id)

	assert.ErrorIs(t, err, domainerrors.ErrSelfFollow)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOperation)
}

func TestRelationshipService_Follow_TargetMissing(t *testing.T) {
	f := newRelationshipFixture(t)
	ctx := context.Background()
	target := uuid.New()
	f.userRepo.EXPECT().FindByID(ctx, target).Return(nil, repository.ErrUserNotFound)

	err := f.service.Follow(ctx, uuid.New(), target)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRelationshipService_Follow_Idempotent(t *testing.T) {
	f := newRelationshipFixture(t)
	ctx := context.Background()
	follower, target := uuid.New(), uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, target).Return(&entity.User{ID: target}, nil).Times(3)
	f.relRepo.EXPECT().FollowExists(ctx, follower, target).Return(false, nil).Once()
	f.relRepo.EXPECT().
		CreateFollow(ctx, mock.MatchedBy(func(e *entity.Follow) bool {
			return e.FollowerID == follower && e.FollowedID == target && !e.CreatedAt.IsZero()
		})).
		Return(nil).Once()
	// Second call sees the edge; the third loses a race and hits the primary key.
	f.relRepo.EXPECT().FollowExists(ctx, follower, target).Return(true, nil).Once()
	f.relRepo.EXPECT().FollowExists(ctx, follower, target).Return(false, nil).Once()
	f.relRepo.EXPECT().CreateFollow(ctx, mock.Anything).Return(repository.ErrDuplicateEdge).Once()

	require.NoError(t, f.service.Follow(ctx, follower, target))
	require.NoError(t, f.service.Follow(ctx, follower, target))
	require.NoError(t, f.service.Follow(ctx, follower, target))
}

func TestRelationshipService_Unfollow_ReportsRemoval(t *testing.T) {
	f := newRelationshipFixture(t)
	ctx := context.Background()
	follower, target := uuid.New(), uuid.New()

	f.relRepo.EXPECT().DeleteFollow(ctx, follower, target).Return(true, nil).Once()
	f.relRepo.EXPECT().DeleteFollow(ctx, follower, target).Return(false, nil).Once()

	removed, err := f.service.Unfollow(ctx, follower, target)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.service.Unfollow(ctx, follower, target)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRelationshipService_ListFollowing(t *testing.T) {
	f := newRelationshipFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	page := entity.NewPage(0, 0, 0)
	following := []*entity.User{{ID: uuid.New(), Name: "bob"}}

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.relRepo.EXPECT().FindFollowing(ctx, userID, page).Return(following, nil)

	users, err := f.service.ListFollowing(ctx, userID, page)

	require.NoError(t, err)
	assert.Equal(t, following, users)
}

func TestRelationshipService_ListFollowers_UnknownUser(t *testing.T) {
	f := newRelationshipFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.ListFollowers(ctx, userID, entity.NewPage(0, 0, 0))

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRelationshipService_AddFavorite(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		f := newRelationshipFixture(t)
		ctx := context.Background()
		userID, recipeID := uuid.New(), uuid.New()

		f.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(&entity.Recipe{ID: recipeID}, nil).Twice()
		f.relRepo.EXPECT().FavoriteExists(ctx, userID, recipeID).Return(false, nil).Once()
		f.relRepo.EXPECT().CreateFavorite(ctx, mock.Anything).Return(nil).Once()
		f.relRepo.EXPECT().FavoriteExists(ctx, userID, recipeID).Return(true, nil).Once()

		require.NoError(t, f.service.AddFavorite(ctx, userID, recipeID))
		require.NoError(t, f.service.AddFavorite(ctx, userID, recipeID))
	})

	t.Run("unknown recipe", func(t *testing.T) {
		f := newRelationshipFixture(t)
		ctx := context.Background()
		recipeID := uuid.New()
		f.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(nil, repository.ErrRecipeNotFound)

		err := f.service.AddFavorite(ctx, uuid.New(), recipeID)

		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	})

	t.Run("recipe deleted concurrently", func(t *testing.T) {
		f := newRelationshipFixture(t)
		ctx := context.Background()
		userID, recipeID := uuid.New(), uuid.New()
		f.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(&entity.Recipe{ID: recipeID}, nil)
		f.relRepo.EXPECT().FavoriteExists(ctx, userID, recipeID).Return(false, nil)
		f.relRepo.EXPECT().CreateFavorite(ctx, mock.Anything).Return(repository.ErrEdgeEndpointMissing)

		err := f.service.AddFavorite(ctx, userID, recipeID)

		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	})
}

func TestRelationshipService_RemoveFavorite(t *testing.T) {
	f := newRelationshipFixture(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()
	f.relRepo.EXPECT().DeleteFavorite(ctx, userID, recipeID).Return(false, nil)

	removed, err := f.service.RemoveFavorite(ctx, userID, recipeID)

	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRelationshipService_ListFavorites(t *testing.T) {
	f := newRelationshipFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	page := entity.NewPage(5, 10, 0)
	recipes := []*entity.Recipe{{ID: uuid.New()}}
	f.relRepo.EXPECT().FindFavoriteRecipes(ctx, userID, page).Return(recipes, nil)

	got, err := f.service.ListFavorites(ctx, userID, page)

	require.NoError(t, err)
	assert.Equal(t, recipes, got)
}

package postgres

import (
	"context"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	"foodies/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// relationshipRepository stores follow and favorite edges.
type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository is the constructor for relationshipRepository.
func NewRelationshipRepository(db *gorm.DB) repository.RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (repo *relationshipRepository) FollowExists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check follow edge")
	}

	return count > 0, nil
}

// CreateFollow inserts the edge. The primary key rejects a concurrent duplicate.
func (repo *relationshipRepository) CreateFollow(ctx context.Context, follow *entity.Follow) error {
	followM := &model.FollowModel{
		FollowerID: follow.FollowerID,
		FollowedID: follow.FollowedID,
		CreatedAt:  follow.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		return classifyEdgeError(err, "failed to create follow edge")
	}
	follow.CreatedAt = followM.CreatedAt

	return nil
}

func (repo *relationshipRepository) DeleteFollow(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.FollowModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete follow edge")
	}

	return result.RowsAffected > 0, nil
}

func (repo *relationshipRepository) FindFollowing(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.User, error) {
	return repo.findUsersByEdge(ctx, "user_follows.followed_id = users.id", "user_follows.follower_id = ?", userID, page)
}

func (repo *relationshipRepository) FindFollowers(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.User, error) {
	return repo.findUsersByEdge(ctx, "user_follows.follower_id = users.id", "user_follows.followed_id = ?", userID, page)
}

func (repo *relationshipRepository) findUsersByEdge(ctx context.Context, joinOn, where string, userID uuid.UUID, page entity.Page) ([]*entity.User, error) {
	var userMs []*model.UserModel
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("users.*").
		Joins("JOIN user_follows ON "+joinOn).
		Where(where, userID).
		Order("user_follows.created_at ASC").
		Order("users.id ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&userMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list follow edges")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

func (repo *relationshipRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	return repo.count(ctx, &model.FollowModel{}, "follower_id = ?", userID)
}

func (repo *relationshipRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	return repo.count(ctx, &model.FollowModel{}, "followed_id = ?", userID)
}

func (repo *relationshipRepository) FavoriteExists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check favorite edge")
	}

	return count > 0, nil
}

func (repo *relationshipRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		UserID:    favorite.UserID,
		RecipeID:  favorite.RecipeID,
		CreatedAt: favorite.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		return classifyEdgeError(err, "failed to create favorite edge")
	}
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

func (repo *relationshipRepository) DeleteFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite edge")
	}

	return result.RowsAffected > 0, nil
}

func (repo *relationshipRepository) FindFavoriteRecipes(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Recipe, error) {
	var recipeMs []*model.RecipeModel
	err := recipeQuery(repo.db.WithContext(ctx)).
		Joins("JOIN user_favorite_recipes ufr ON ufr.recipe_id = recipes.id").
		Where("ufr.user_id = ?", userID).
		Order("ufr.created_at ASC").
		Order("recipes.id ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&recipeMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorite recipes")
	}

	return toRecipesDomain(recipeMs), nil
}

func (repo *relationshipRepository) CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error) {
	return repo.count(ctx, &model.FavoriteModel{}, "user_id = ?", userID)
}

func (repo *relationshipRepository) count(ctx context.Context, table any, where string, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(table).Where(where, userID).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count edges")
	}

	return count, nil
}

func classifyEdgeError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateEdge
	case isForeignKeyConstraintViolation(err):
		return repository.ErrEdgeEndpointMissing
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

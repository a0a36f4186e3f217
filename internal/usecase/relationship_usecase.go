package usecase

import (
	"context"

	"foodies/internal/domain/entity"

	"github.com/google/uuid"
)

// RelationshipUsecase manages follow and favorite edges.
type RelationshipUsecase interface {
	Follow(ctx context.Context, followerID, targetID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, targetID uuid.UUID) (bool, error)
	ListFollowing(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.User, error)
	ListFollowers(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.User, error)

	AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Recipe, error)
}

package repository

import (
	"context"
	"errors"

	"foodies/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateEdge is returned when an insert collides with an existing follow or favorite edge.
	ErrDuplicateEdge = errors.New("relationship edge already exists")

	// ErrEdgeEndpointMissing is returned when an edge references a user or recipe that does not exist.
	ErrEdgeEndpointMissing = errors.New("relationship edge endpoint does not exist")
)

// RelationshipRepository persists the follow and favorite edge sets.
type RelationshipRepository interface {
	// FollowExists reports whether followerID already follows followedID.
	FollowExists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)

	// CreateFollow inserts a follow edge. Returns ErrDuplicateEdge when it already exists.
	CreateFollow(ctx context.Context, follow *entity.Follow) error

	// DeleteFollow removes a follow edge and reports whether a row was removed.
	DeleteFollow(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)

	// FindFollowing lists the users that userID follows, in follow order.
	FindFollowing(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.User, error)

	// FindFollowers lists the users following userID, in follow order.
	FindFollowers(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.User, error)

	// CountFollowing returns the number of users that userID follows.
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountFollowers returns the number of users following userID.
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)

	// FavoriteExists reports whether recipeID is in userID's favorites.
	FavoriteExists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)

	// CreateFavorite inserts a favorite edge. Returns ErrDuplicateEdge when it already exists.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error

	// DeleteFavorite removes a favorite edge and reports whether a row was removed.
	DeleteFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)

	// FindFavoriteRecipes lists the recipes userID has favorited, in favorite order.
	FindFavoriteRecipes(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Recipe, error)

	// CountFavorites returns the number of recipes userID has favorited.
	CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error)
}

package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "foodies/internal/delivery/context"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	"foodies/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// relationshipService implements the RelationshipUsecase interface.
// Edge writes run outside an explicit transaction: the composite primary key
// absorbs a concurrent duplicate, and a violation would abort an enclosing transaction.
type relationshipService struct {
	userRepo         repository.UserRepository
	recipeRepo       repository.RecipeRepository
	relationshipRepo repository.RelationshipRepository
	now              func() time.Time
	logger           *slog.Logger
}

// RelationshipServiceParams holds dependencies for RelationshipService, injected by Fx.
type RelationshipServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RecipeRepo       repository.RecipeRepository
	RelationshipRepo repository.RelationshipRepository
	Logger           *slog.Logger
}

// NewRelationshipService is the constructor for relationshipService.
func NewRelationshipService(params RelationshipServiceParams) usecase.RelationshipUsecase {
	return &relationshipService{
		userRepo:         params.UserRepo,
		recipeRepo:       params.RecipeRepo,
		relationshipRepo: params.RelationshipRepo,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *relationshipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Follow is idempotent: following someone twice leaves a single edge.
func (srv *relationshipService) Follow(ctx context.Context, followerID, targetID uuid.UUID) error {
	follow := &entity.Follow{FollowerID: followerID, FollowedID: targetID, CreatedAt: srv.now().UTC()}
	if follow.IsSelfLoop() {
		return errors.Wrap(domainerrors.ErrSelfFollow, "follow rejected")
	}

	if err := srv.ensureUserExists(ctx, targetID); err != nil {
		return err
	}

	exists, err := srv.relationshipRepo.FollowExists(ctx, followerID, targetID)
	if err != nil {
		return errors.Wrap(err, "failed to check follow edge")
	}
	if exists {
		return nil
	}

	err = srv.relationshipRepo.CreateFollow(ctx, follow)
	switch {
	case err == nil:
		srv.log(ctx).Info("User followed", slog.Any("followerID", followerID), slog.Any("followedID", targetID))

		return nil
	case errors.Is(err, repository.ErrDuplicateEdge):
		return nil
	case errors.Is(err, repository.ErrEdgeEndpointMissing):
		return errors.Wrap(domainerrors.ErrUserNotFound, "follow target disappeared")
	default:
		return errors.Wrap(err, "failed to create follow edge")
	}
}

// Unfollow reports whether an edge was removed.
func (srv *relationshipService) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
	removed, err := srv.relationshipRepo.DeleteFollow(ctx, followerID, targetID)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete follow edge")
	}
	if removed {
		srv.log(ctx).Info("User unfollowed", slog.Any("followerID", followerID), slog.Any("followedID", targetID))
	}

	return removed, nil
}

func (srv *relationshipService) ListFollowing(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.User, error) {
	if err := srv.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	users, err := srv.relationshipRepo.FindFollowing(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	return users, nil
}

func (srv *relationshipService) ListFollowers(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.User, error) {
	if err := srv.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	users, err := srv.relationshipRepo.FindFollowers(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return users, nil
}

// AddFavorite is idempotent like Follow.
func (srv *relationshipService) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	if _, err := srv.recipeRepo.FindByID(ctx, recipeID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return errors.Wrap(domainerrors.ErrRecipeNotFound, "favorite rejected")
		}

		return errors.Wrap(err, "failed to find recipe")
	}

	exists, err := srv.relationshipRepo.FavoriteExists(ctx, userID, recipeID)
	if err != nil {
		return errors.Wrap(err, "failed to check favorite edge")
	}
	if exists {
		return nil
	}

	err = srv.relationshipRepo.CreateFavorite(ctx, &entity.Favorite{UserID: userID, RecipeID: recipeID, CreatedAt: srv.now().UTC()})
	switch {
	case err == nil, errors.Is(err, repository.ErrDuplicateEdge):
		return nil
	case errors.Is(err, repository.ErrEdgeEndpointMissing):
		return errors.Wrap(domainerrors.ErrRecipeNotFound, "favorite target disappeared")
	default:
		return errors.Wrap(err, "failed to create favorite edge")
	}
}

// RemoveFavorite reports whether an edge was removed.
func (srv *relationshipService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	removed, err := srv.relationshipRepo.DeleteFavorite(ctx, userID, recipeID)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete favorite edge")
	}

	return removed, nil
}

func (srv *relationshipService) ListFavorites(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Recipe, error) {
	recipes, err := srv.relationshipRepo.FindFavoriteRecipes(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return recipes, nil
}

func (srv *relationshipService) ensureUserExists(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "relationship lookup")
		}

		return errors.Wrap(err, "failed to find user")
	}

	return nil
}

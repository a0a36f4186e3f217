package impl

import (
	"context"
	"log/slog"
	"strings"

	"foodies/config"
	deliverycontext "foodies/internal/delivery/context"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/repository"
	"foodies/internal/domain/service"
	"foodies/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recipeKeyPrefix = "recipes/"

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager     repository.TransactionManager
	recipeRepo    repository.RecipeRepository
	uploader      service.ObjectUploader
	maxUploadSize int64
	logger        *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Uploader   service.ObjectUploader
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) (usecase.RecipeUsecase, error) {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Storage != nil {
		size, err := params.Config.Storage.MaxUploadBytes()
		if err != nil {
			return nil, err
		}
		maxUploadSize = size
	}

	return &recipeService{
		txManager:     params.TxManager,
		recipeRepo:    params.RecipeRepo,
		uploader:      params.Uploader,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search returns an empty list when nothing matches.
func (srv *recipeService) Search(ctx context.Context, filter entity.RecipeFilter, page entity.Page) ([]*entity.Recipe, error) {
	filter = entity.RecipeFilter{
		Category:   strings.TrimSpace(filter.Category),
		Ingredient: strings.TrimSpace(filter.Ingredient),
		Area:       strings.TrimSpace(filter.Area),
	}

	recipes, err := srv.recipeRepo.Search(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search recipes")
	}

	return recipes, nil
}

func (srv *recipeService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe lookup")
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}

func (srv *recipeService) ListPopular(ctx context.Context, page entity.Page) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindPopular(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list popular recipes")
	}

	return recipes, nil
}

func (srv *recipeService) ListOwn(ctx context.Context, ownerID uuid.UUID, page entity.Page) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own recipes")
	}

	return recipes, nil
}

// Create stores the recipe and, when given, its thumbnail at recipes/<recipe id><ext>.
// A failed upload rolls the recipe back.
func (srv *recipeService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	var ext, contentType string
	if input.Thumb != nil {
		var err error
		if ext, contentType, err = imageExtension(input.Thumb, srv.maxUploadSize); err != nil {
			return nil, err
		}
	}

	seen := make(map[uuid.UUID]struct{}, len(input.Ingredients))
	for _, line := range input.Ingredients {
		if _, dup := seen[line.IngredientID]; dup {
			return nil, errors.Wrap(
				domainerrors.ErrValidationFailed.WithDetails("ingredients: ingredient "+line.IngredientID.String()+" is listed twice"),
				"recipe create",
			)
		}
		seen[line.IngredientID] = struct{}{}
	}

	recipe := &entity.Recipe{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Instructions: input.Instructions,
		Time:         input.Time,
		OwnerID:      ownerID,
		CategoryID:   input.CategoryID,
		AreaID:       input.AreaID,
		Ingredients:  make([]*entity.RecipeIngredient, 0, len(input.Ingredients)),
	}
	for _, line := range input.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, &entity.RecipeIngredient{
			IngredientID: line.IngredientID,
			Measure:      strings.TrimSpace(line.Measure),
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		if err := recipeRepo.Create(ctx, recipe); err != nil {
			if errors.Is(err, repository.ErrRecipeReferenceMissing) {
				return errors.Wrap(domainerrors.ErrReferenceNotFound, "recipe create")
			}

			return errors.Wrap(err, "failed to create recipe")
		}

		if input.Thumb == nil {
			return nil
		}

		url, err := srv.uploader.Upload(ctx, recipeKeyPrefix+recipe.ID.String()+ext, contentType, input.Thumb.Body)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}
		if err := recipeRepo.UpdateThumb(ctx, recipe.ID, url); err != nil {
			return errors.Wrap(err, "failed to store recipe thumb")
		}
		recipe.Thumb = url

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Recipe creation failed", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Info("Recipe created", slog.Any("recipeID", recipe.ID), slog.Any("ownerID", ownerID))

	return recipe, nil
}

// Delete removes a recipe owned by userID. Deleting someone else's recipe is forbidden.
func (srv *recipeService) Delete(ctx context.Context, userID, recipeID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		recipe, err := recipeRepo.FindByID(ctx, recipeID)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe delete")
			}

			return errors.Wrap(err, "failed to find recipe")
		}
		if !recipe.IsOwnedBy(userID) {
			return errors.Wrap(domainerrors.ErrNotRecipeOwner, "recipe delete")
		}

		removed, err := recipeRepo.Delete(ctx, recipeID)
		if err != nil {
			return errors.Wrap(err, "failed to delete recipe")
		}
		if !removed {
			return errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe delete")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete recipe")
	}

	srv.log(ctx).Info("Recipe deleted", slog.Any("recipeID", recipeID))

	return nil
}

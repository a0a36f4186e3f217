package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"foodies/internal/delivery/http/response"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC       usecase.RecipeUsecase
	RelationshipUC usecase.RelationshipUsecase
	Logger         *slog.Logger
}

// RecipeHandler serves recipe browsing, authoring and favorites.
type RecipeHandler struct {
	recipeUC       usecase.RecipeUsecase
	relationshipUC usecase.RelationshipUsecase
	logger         *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler.
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC:       params.RecipeUC,
		relationshipUC: params.RelationshipUC,
		logger:         params.Logger,
	}
}

type SearchRecipesRequest struct {
	Category   string `query:"category" validate:"max=100"`
	Ingredient string `query:"ingredient" validate:"max=100"`
	Area       string `query:"area" validate:"max=100"`
}

type RecipeIngredientRequest struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Measure string    `json:"measure" validate:"required,max=100"`
}

// CreateRecipeRequest is accepted as JSON, or as multipart form fields with
// ingredients encoded as a JSON array and an optional "thumb" file.
type CreateRecipeRequest struct {
	Title        string                    `json:"title" validate:"required,max=255"`
	Description  string                    `json:"description" validate:"required"`
	Instructions string                    `json:"instructions" validate:"required"`
	Time         int                       `json:"time" validate:"gte=1"`
	CategoryID   uuid.UUID                 `json:"category_id" validate:"required"`
	AreaID       uuid.UUID                 `json:"area_id" validate:"required"`
	Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,unique=ID,dive"`
}

// Search filters recipes by category, ingredient and area names.
func (h *RecipeHandler) Search(c echo.Context) error {
	var req SearchRecipesRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(bindMessage(err)), "bind search")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	page, err := bindPage(c, searchPageLimit)
	if err != nil {
		return err
	}

	recipes, err := h.recipeUC.Search(c.Request().Context(), entity.RecipeFilter{
		Category:   req.Category,
		Ingredient: req.Ingredient,
		Area:       req.Area,
	}, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return listOf(c, recipes, page)
}

func (h *RecipeHandler) Popular(c echo.Context) error {
	page, err := bindPage(c, entity.DefaultPageLimit)
	if err != nil {
		return err
	}

	recipes, err := h.recipeUC.ListPopular(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return listOf(c, recipes, page)
}

func (h *RecipeHandler) GetByID(c echo.Context) error {
	recipeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	recipe, err := h.recipeUC.GetByID(c.Request().Context(), recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "")
}

// Own lists the caller's recipes.
func (h *RecipeHandler) Own(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	page, err := bindPage(c, entity.DefaultPageLimit)
	if err != nil {
		return err
	}

	recipes, err := h.recipeUC.ListOwn(c.Request().Context(), user.ID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return listOf(c, recipes, page)
}

// Create publishes a recipe owned by the caller.
func (h *RecipeHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var (
		req   CreateRecipeRequest
		thumb *usecase.UploadInput
	)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		closeThumb, err := bindRecipeForm(c, &req, &thumb)
		if err != nil {
			return err
		}
		defer closeThumb()
	} else if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(bindMessage(err)), "bind recipe")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CreateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		Time:         req.Time,
		CategoryID:   req.CategoryID,
		AreaID:       req.AreaID,
		Ingredients:  make([]usecase.RecipeIngredientInput, 0, len(req.Ingredients)),
		Thumb:        thumb,
	}
	for _, line := range req.Ingredients {
		input.Ingredients = append(input.Ingredients, usecase.RecipeIngredientInput{IngredientID: line.ID, Measure: line.Measure})
	}

	recipe, err := h.recipeUC.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// bindRecipeForm fills req from multipart fields and opens the optional thumb file.
func bindRecipeForm(c echo.Context, req *CreateRecipeRequest, thumb **usecase.UploadInput) (func(), error) {
	invalid := func(details string) error {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(details), "bind recipe form")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, invalid("malformed multipart body")
	}
	value := func(key string) string {
		if vs := form.Value[key]; len(vs) > 0 {
			return vs[0]
		}

		return ""
	}

	req.Title = value("title")
	req.Description = value("description")
	req.Instructions = value("instructions")
	if raw := value("time"); raw != "" {
		if req.Time, err = strconv.Atoi(raw); err != nil {
			return nil, invalid("time must be an integer")
		}
	}
	if raw := value("category_id"); raw != "" {
		if req.CategoryID, err = uuid.Parse(raw); err != nil {
			return nil, invalid("category_id must be a UUID")
		}
	}
	if raw := value("area_id"); raw != "" {
		if req.AreaID, err = uuid.Parse(raw); err != nil {
			return nil, invalid("area_id must be a UUID")
		}
	}
	if raw := value("ingredients"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Ingredients); err != nil {
			return nil, invalid("ingredients must be a JSON array")
		}
	}

	files := form.File["thumb"]
	if len(files) == 0 {
		return func() {}, nil
	}

	upload, closeUpload, err := openUpload(files[0])
	if err != nil {
		return nil, err
	}
	*thumb = upload

	return closeUpload, nil
}

// Delete removes a recipe owned by the caller.
func (h *RecipeHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	recipeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.recipeUC.Delete(c.Request().Context(), user.ID, recipeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recipe deleted successfully")
}

// Favorites lists the caller's favorite recipes.
func (h *RecipeHandler) Favorites(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	page, err := bindPage(c, entity.DefaultPageLimit)
	if err != nil {
		return err
	}

	recipes, err := h.relationshipUC.ListFavorites(c.Request().Context(), user.ID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return listOf(c, recipes, page)
}

func (h *RecipeHandler) AddFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	recipeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.relationshipUC.AddFavorite(c.Request().Context(), user.ID, recipeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recipe added to favorites")
}

func (h *RecipeHandler) RemoveFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	recipeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	removed, err := h.relationshipUC.RemoveFavorite(c.Request().Context(), user.ID, recipeID)
	if err != nil {
		return errors.WithStack(err)
	}
	if !removed {
		return errors.Wrap(domainerrors.ErrFavoriteNotFound, "remove favorite")
	}

	return response.Success(c, http.StatusOK, nil, "Recipe removed from favorites")
}

package handler

import (
	"foodies/internal/domain/entity"
	"foodies/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public taxonomy listings.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

func (h *CatalogHandler) Areas(c echo.Context) error {
	page, err := bindPage(c, entity.DefaultPageLimit)
	if err != nil {
		return err
	}

	areas, err := h.catalogUC.ListAreas(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return listOf(c, areas, page)
}

func (h *CatalogHandler) Categories(c echo.Context) error {
	page, err := bindPage(c, entity.DefaultPageLimit)
	if err != nil {
		return err
	}

	categories, err := h.catalogUC.ListCategories(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return listOf(c, categories, page)
}

func (h *CatalogHandler) Ingredients(c echo.Context) error {
	page, err := bindPage(c, entity.DefaultPageLimit)
	if err != nil {
		return err
	}

	ingredients, err := h.catalogUC.ListIngredients(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return listOf(c, ingredients, page)
}

func (h *CatalogHandler) Testimonials(c echo.Context) error {
	page, err := bindPage(c, testimonialPageLimit)
	if err != nil {
		return err
	}

	testimonials, err := h.catalogUC.ListTestimonials(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return listOf(c, testimonials, page)
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	"mime/multipart"
	"net/http"

	deliverycontext "foodies/internal/delivery/context"
	"foodies/internal/delivery/http/response"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	searchPageLimit      = 10
	testimonialPageLimit = 10
)

type pageQuery struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0"`
}

// bindAndValidate binds the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(bindMessage(err)), "bind request")
	}

	return c.Validate(req)
}

func bindMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return "malformed request"
}

// bindPage reads skip and limit; a missing or zero limit falls back to defaultLimit.
func bindPage(c echo.Context, defaultLimit int) (entity.Page, error) {
	var q pageQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return entity.Page{}, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("skip and limit must be integers"), "bind page")
	}
	if err := c.Validate(&q); err != nil {
		return entity.Page{}, err
	}

	return entity.NewPage(q.Skip, q.Limit, defaultLimit), nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(name+" must be a UUID"), "parse path")
	}

	return id, nil
}

// currentUser is only called behind the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.CurrentUser(c)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no caller on context")
	}

	return user, nil
}

// formUpload opens the multipart file under field. The returned closer must be called.
func formUpload(c echo.Context, field string) (*usecase.UploadInput, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(field+" file is required"), "read upload")
		}

		return nil, nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed multipart body"), "read upload")
	}

	return openUpload(header)
}

func openUpload(header *multipart.FileHeader) (*usecase.UploadInput, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "open upload")
	}

	input := &usecase.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	}

	return input, func() { _ = file.Close() }, nil
}

func listOf[T any](c echo.Context, items []T, page entity.Page) error {
	return response.Success(c, http.StatusOK, response.NewList(items, page.Skip, page.Limit), "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

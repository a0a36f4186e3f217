package handler

import (
	"context"
	"log/slog"
	"net/http"

	"foodies/internal/delivery/http/response"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC         usecase.UserUsecase
	RelationshipUC usecase.RelationshipUsecase
	Logger         *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC         usecase.UserUsecase
	relationshipUC usecase.RelationshipUsecase
	logger         *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:         params.UserUC,
		relationshipUC: params.RelationshipUC,
		logger:         params.Logger,
	}
}

// UpdateProfileRequest changes only the fields that are present.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,notblank,max=100"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,http_url"`
}

// Me returns the caller's profile with counters.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return h.profile(c, user.ID)
}

// GetByID returns another user's public profile.
func (h *UserHandler) GetByID(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	return h.profile(c, userID)
}

func (h *UserHandler) profile(c echo.Context, userID uuid.UUID) error {
	profile, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateMe handles PATCH /users/me.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.userUC.UpdateProfile(c.Request().Context(), user, &usecase.UpdateProfileInput{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Profile updated successfully")
}

// UpdateAvatar stores the multipart "avatar" file and points the profile at it.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	upload, closeUpload, err := formUpload(c, "avatar")
	if err != nil {
		return err
	}
	defer closeUpload()

	updated, err := h.userUC.UpdateAvatar(c.Request().Context(), user, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"avatar": updated.Avatar}, "Avatar updated successfully")
}

func (h *UserHandler) MyFollowing(c echo.Context) error {
	return h.listEdges(c, true, h.relationshipUC.ListFollowing)
}

func (h *UserHandler) MyFollowers(c echo.Context) error {
	return h.listEdges(c, true, h.relationshipUC.ListFollowers)
}

func (h *UserHandler) Following(c echo.Context) error {
	return h.listEdges(c, false, h.relationshipUC.ListFollowing)
}

func (h *UserHandler) Followers(c echo.Context) error {
	return h.listEdges(c, false, h.relationshipUC.ListFollowers)
}

type listUsersFunc func(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.User, error)

// listEdges lists the caller's edges when self is set, otherwise those of the :id user.
func (h *UserHandler) listEdges(c echo.Context, self bool, list listUsersFunc) error {
	var userID uuid.UUID
	if self {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		userID = user.ID
	} else {
		id, err := pathUUID(c, "id")
		if err != nil {
			return err
		}
		userID = id
	}

	page, err := bindPage(c, entity.DefaultPageLimit)
	if err != nil {
		return err
	}

	users, err := list(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return listOf(c, users, page)
}

// Follow handles POST /users/:id/follow. Following twice is not an error.
func (h *UserHandler) Follow(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.relationshipUC.Follow(c.Request().Context(), user.ID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Successfully followed user")
}

// Unfollow handles DELETE /users/:id/follow.
func (h *UserHandler) Unfollow(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	removed, err := h.relationshipUC.Unfollow(c.Request().Context(), user.ID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}
	if !removed {
		return errors.Wrap(domainerrors.ErrNotFollowing, "unfollow")
	}

	return response.Success(c, http.StatusOK, nil, "Successfully unfollowed user")
}

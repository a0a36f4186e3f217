package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"foodies/internal/delivery/http/middleware"
	"foodies/internal/delivery/http/response"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler serves registration and the token lifecycle.
type AuthHandler struct {
	userUC    usecase.UserUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:    params.UserUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72,maxbytes=72"`
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{Name: req.Name, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token, err := h.refreshTokenOf(c)
	if err != nil {
		return err
	}

	output, err := h.sessionUC.RefreshToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout revokes the stored refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := h.refreshTokenOf(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// refreshTokenOf reads refresh_token from the body, falling back to the bearer header.
func (h *AuthHandler) refreshTokenOf(c echo.Context) (string, error) {
	var req RefreshTokenRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(bindMessage(err)), "bind request")
		}
	}

	token := strings.TrimSpace(req.RefreshToken)
	if token == "" {
		token, _ = middleware.BearerToken(c)
	}
	if token == "" {
		return "", errors.Wrap(domainerrors.ErrInvalidRefreshToken, "missing refresh token")
	}

	return token, nil
}

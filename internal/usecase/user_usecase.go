// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"foodies/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenTypeBearer is reported with every issued token pair.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Name     string
	Password string
}

// UpdateProfileInput carries the profile fields to change. Nil fields are kept.
type UpdateProfileInput struct {
	Name   *string
	Email  *string
	Avatar *string
}

// UploadInput is an image received from a client.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// --- Output DTOs ---

// TokenOutput is the token pair handed to the client, with the subject both tokens were issued for.
type TokenOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	Subject      string `json:"subject"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// GetProfile returns a user together with relationship counters.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, current *entity.User, input *UpdateProfileInput) (*entity.User, error)
	UpdateAvatar(ctx context.Context, current *entity.User, input *UploadInput) (*entity.User, error)
}

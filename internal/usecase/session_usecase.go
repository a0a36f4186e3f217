package usecase

import (
	"context"

	"foodies/internal/domain/entity"
)

// SessionUsecase authenticates bearer tokens and manages the refresh token of a session.
type SessionUsecase interface {
	// Resolve maps an access token to the identity it was issued for.
	Resolve(ctx context.Context, accessToken string) (*entity.User, error)

	// RefreshToken exchanges a valid refresh token for a new access token.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenOutput, error)

	// Logout clears the stored refresh token.
	Logout(ctx context.Context, refreshToken string) error
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"foodies/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when a write collides with another user's email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateName is returned when a write collides with another user's name.
	ErrDuplicateName = errors.New("name already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByName retrieves a single user by their unique name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// FindByNameOrEmail returns every user whose name or email matches.
	FindByNameOrEmail(ctx context.Context, name, email string) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the profile fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// SetRefreshToken stores the digest of the active refresh token. An empty digest clears it.
	SetRefreshToken(ctx context.Context, id uuid.UUID, digest string) error
}

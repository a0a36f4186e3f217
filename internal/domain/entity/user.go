// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity of an account holder. Name and Email are unique.
type User struct {
	ID           uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the user.
	Name         string    `json:"name"`             // Login name and token subject.
	Email        string    `json:"email"`            // The user's contact email.
	PasswordHash string    `json:"-"`                // bcrypt hash, never serialized.
	Avatar       string    `json:"avatar,omitempty"` // Public URL of the avatar image.
	RefreshToken string    `json:"-"`                // Digest of the single active refresh token, empty when logged out.
	CreatedAt    time.Time `json:"created_at"`       // Timestamp of when this user account was created.
	UpdatedAt    time.Time `json:"updated_at"`       // Timestamp of the last modification to this user's data.
}

// HasActiveSession reports whether a refresh token is currently stored for the user.
func (u *User) HasActiveSession() bool {
	return u.RefreshToken != ""
}

// UserProfile is the public view of a user together with relationship counters.
type UserProfile struct {
	User           *User `json:"user"`
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	RecipesCount   int64 `json:"recipes_count"`
	FavoritesCount int64 `json:"favorites_count"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: FollowerID follows FollowedID.
type Follow struct {
	FollowerID uuid.UUID
	FollowedID uuid.UUID
	CreatedAt  time.Time
}

// IsSelfLoop reports whether the edge points back at its origin.
func (f *Follow) IsSelfLoop() bool {
	return f.FollowerID == f.FollowedID
}

// Favorite is a directed edge from a user to a recipe.
type Favorite struct {
	UserID    uuid.UUID
	RecipeID  uuid.UUID
	CreatedAt time.Time
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// FollowModel mirrors the 'user_follows' edge table. The composite primary key
// is the uniqueness backstop for concurrent follows.
type FollowModel struct {
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FollowedID uuid.UUID `gorm:"type:uuid;primaryKey;index;check:chk_user_follows_no_self,follower_id <> followed_id"`
	CreatedAt  time.Time `gorm:"not null;index"`

	Follower *UserModel `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followed *UserModel `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "user_follows"
}

// FavoriteModel mirrors the 'user_favorite_recipes' edge table.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null;index"`

	User   *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *RecipeModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "user_favorite_recipes"
}

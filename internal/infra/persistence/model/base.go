// Package model holds the GORM persistence structs. They never leave the infra layer.
package model

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// newID returns a time-ordered UUID so primary keys sort by insertion.
func newID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to generate uuid")
	}

	return id, nil
}

// All returns every model in dependency order, for schema bootstrap.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&AreaModel{},
		&IngredientModel{},
		&RecipeModel{},
		&RecipeIngredientModel{},
		&FollowModel{},
		&FavoriteModel{},
		&TestimonialModel{},
	}
}

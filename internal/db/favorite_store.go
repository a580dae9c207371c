// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/mxrtinss/equipe403/internal/model"
)

type FavoriteStore interface {
	CreateFavorite(context.Context, *model.Favorite) error
	DeleteFavorite(ctx context.Context, userID, eventID string) error
	ListFavoritesByUser(ctx context.Context, userID string) ([]*model.Favorite, error)
	// DeleteFavoritesByUser removes every favorite a user owns, used
	// when the account itself is deleted.
	DeleteFavoritesByUser(ctx context.Context, userID string) error
}

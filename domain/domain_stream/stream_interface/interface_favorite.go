package stream_interface

import (
	"context"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

type UserFavoriteRepository interface {
	FindByUser(ctx context.Context, kindeID string) ([]stream_models.UserFavorite, error)
	IsFavorite(ctx context.Context, kindeID, favoriteType, spotifyID string) (bool, error)
	Create(ctx context.Context, favorite *stream_models.UserFavorite) error
	Delete(ctx context.Context, kindeID, favoriteType, spotifyID string) error
}

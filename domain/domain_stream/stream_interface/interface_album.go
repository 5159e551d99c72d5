package stream_interface

import (
	"context"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"go.mongodb.org/mongo-driver/bson"
)

type AlbumRepository interface {
	FindBySpotifyID(ctx context.Context, spotifyID string) (*stream_models.Album, error)
	FindByArtist(ctx context.Context, artistSpotifyID string) ([]stream_models.Album, error)
	Create(ctx context.Context, album *stream_models.Album) error
	UpdateBySpotifyID(ctx context.Context, spotifyID string, patch bson.M) error
}

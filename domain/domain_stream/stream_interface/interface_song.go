package stream_interface

import (
	"context"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"go.mongodb.org/mongo-driver/bson"
)

type SongRepository interface {
	FindBySpotifyID(ctx context.Context, spotifyID string) (*stream_models.Song, error)
	// FindByISRC 返回共享同一isrc的全部版本，按created_at升序
	FindByISRC(ctx context.Context, isrc string) ([]stream_models.Song, error)
	FindByArtist(ctx context.Context, artistSpotifyID string) ([]stream_models.Song, error)
	Create(ctx context.Context, song *stream_models.Song) error
	UpdateBySpotifyID(ctx context.Context, spotifyID string, patch bson.M) error
}

package stream_interface

import (
	"context"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"go.mongodb.org/mongo-driver/bson"
)

type ArtistRepository interface {
	FindBySpotifyID(ctx context.Context, spotifyID string) (*stream_models.Artist, error)
	FindBySpotifyIDs(ctx context.Context, spotifyIDs []string) ([]stream_models.Artist, error)
	Create(ctx context.Context, artist *stream_models.Artist) error
	// UpdateBySpotifyID 以补丁方式更新，未出现在patch中的字段保持不变
	UpdateBySpotifyID(ctx context.Context, spotifyID string, patch bson.M) error
}

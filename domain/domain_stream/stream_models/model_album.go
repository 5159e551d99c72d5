package stream_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Album 专辑播放量文档，按 spotify_id 唯一，无 isrc 多版本问题
type Album struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SpotifyID       string             `bson:"spotify_id" json:"spotifyId"`
	Title           string             `bson:"title" json:"title"`
	ArtistSpotifyID string             `bson:"artist_spotify_id" json:"artistSpotifyId"`

	TotalStreams int64       `bson:"total_streams" json:"totalStreams"`
	DailyStreams DailySeries `bson:"daily_streams" json:"dailyStreams"`

	Image string `bson:"image,omitempty" json:"image,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

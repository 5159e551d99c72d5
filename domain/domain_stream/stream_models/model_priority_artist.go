package stream_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriorityArtist 定时任务处理的固定艺术家名单条目
// SocialID 为第三方社交分析平台的可选副标识
type PriorityArtist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SpotifyID string             `bson:"spotify_id" json:"spotifyId"`
	SocialID  string             `bson:"social_id,omitempty" json:"socialId,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}

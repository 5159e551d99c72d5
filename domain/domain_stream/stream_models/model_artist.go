package stream_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Artist 艺术家播放量文档，按 spotify_id 唯一
// 四条日序列分别对应 total/lead/solo/feature 四种参与角色
type Artist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SpotifyID string             `bson:"spotify_id" json:"spotifyId"`
	Name      string             `bson:"name" json:"name"`

	Followers  int64    `bson:"followers" json:"followers"`
	Popularity int      `bson:"popularity" json:"popularity"`
	Genres     []string `bson:"genres" json:"genres"`
	Image      string   `bson:"image,omitempty" json:"image,omitempty"`

	TotalStreams   *int64 `bson:"total_streams" json:"totalStreams"`
	LeadStreams    *int64 `bson:"lead_streams" json:"leadStreams"`
	SoloStreams    *int64 `bson:"solo_streams" json:"soloStreams"`
	FeatureStreams *int64 `bson:"feature_streams" json:"featureStreams"`

	DailyTotalStreams   DailySeries `bson:"daily_total_streams" json:"dailyTotalStreams"`
	DailyLeadStreams    DailySeries `bson:"daily_lead_streams" json:"dailyLeadStreams"`
	DailySoloStreams    DailySeries `bson:"daily_solo_streams" json:"dailySoloStreams"`
	DailyFeatureStreams DailySeries `bson:"daily_feature_streams" json:"dailyFeatureStreams"`

	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

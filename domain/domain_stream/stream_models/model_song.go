package stream_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song 单曲播放量文档，主键为 spotify_id
// isrc 不唯一：同一录音的再版/洁版等会各占一条记录，读取时做版本归并
type Song struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SpotifyID       string             `bson:"spotify_id" json:"spotifyId"`
	Title           string             `bson:"title" json:"title"`
	ArtistSpotifyID string             `bson:"artist_spotify_id" json:"artistSpotifyId"`

	TotalStreams int64       `bson:"total_streams" json:"totalStreams"`
	DailyStreams DailySeries `bson:"daily_streams" json:"dailyStreams"`

	ISRC  string `bson:"isrc,omitempty" json:"isrc,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ResolveCanonical 对共享同一 isrc 的版本做读取时归并
// 日序列按 siblings 插入序合并（后者覆盖前者），primary 自身的值对同日期始终胜出；
// 规范版本取累计播放量最高的一条（与 primary 一并比较）。
// 归并结果只作为视图返回，不回写存储。
func ResolveCanonical(primary *Song, siblings []Song) *Song {
	if primary == nil && len(siblings) == 0 {
		return nil
	}

	merged := DailySeries{}
	for _, s := range siblings {
		merged = merged.MergeAll(s.DailyStreams)
	}

	canonical := primary
	for i := range siblings {
		if canonical == nil || siblings[i].TotalStreams > canonical.TotalStreams {
			canonical = &siblings[i]
		}
	}

	if primary != nil {
		merged = merged.MergeAll(primary.DailyStreams)
	}

	view := *canonical
	view.DailyStreams = merged
	return &view
}

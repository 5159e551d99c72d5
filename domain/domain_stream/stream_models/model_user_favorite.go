package stream_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FavoriteTypeArtist = "artist"
	FavoriteTypeAlbum  = "album"
	FavoriteTypeTrack  = "track"
)

// UserFavorite 用户收藏，(kinde_id, type, spotify_id) 唯一
// name/image 为冗余展示字段
type UserFavorite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	KindeID   string             `bson:"kinde_id" json:"-"`
	Type      string             `bson:"type" json:"type"`
	SpotifyID string             `bson:"spotify_id" json:"spotifyId"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}

// ValidFavoriteType 校验收藏类型取值
func ValidFavoriteType(t string) bool {
	switch t {
	case FavoriteTypeArtist, FavoriteTypeAlbum, FavoriteTypeTrack:
		return true
	}
	return false
}

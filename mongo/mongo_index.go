package mongo

import (
	"context"
	"log"
	"time"

	"github.com/soundpulse/soundpulse-backend/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes 启动时建立各集合索引，重复创建由驱动幂等处理
func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Artist Collection
	artistCollection := db.Collection(domain.CollectionStreamArtist)
	createUniqueIndex(ctx, artistCollection, bson.D{{Key: "spotify_id", Value: 1}}, "spotify_id_unique")

	// Song Collection：spotify_id唯一，isrc非唯一（同一录音可有多条版本记录）
	songCollection := db.Collection(domain.CollectionStreamSong)
	createUniqueIndex(ctx, songCollection, bson.D{{Key: "spotify_id", Value: 1}}, "spotify_id_unique")
	createIndex(ctx, songCollection, bson.D{{Key: "isrc", Value: 1}}, "isrc")
	createIndex(ctx, songCollection, bson.D{{Key: "artist_spotify_id", Value: 1}}, "artist_spotify_id")

	// Album Collection
	albumCollection := db.Collection(domain.CollectionStreamAlbum)
	createUniqueIndex(ctx, albumCollection, bson.D{{Key: "spotify_id", Value: 1}}, "spotify_id_unique")
	createIndex(ctx, albumCollection, bson.D{{Key: "artist_spotify_id", Value: 1}}, "artist_spotify_id")

	// PriorityArtist Collection
	rosterCollection := db.Collection(domain.CollectionPriorityArtist)
	createUniqueIndex(ctx, rosterCollection, bson.D{{Key: "spotify_id", Value: 1}}, "spotify_id_unique")

	// UserFavorite Collection
	favoriteCollection := db.Collection(domain.CollectionUserFavorite)
	createUniqueIndex(ctx, favoriteCollection, bson.D{
		{Key: "kinde_id", Value: 1},
		{Key: "type", Value: 1},
		{Key: "spotify_id", Value: 1}}, "kinde_type_spotify_unique")
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("创建索引 '%s' 失败: %v", name, err)
	}
}

func createUniqueIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("创建索引 '%s' 失败: %v", name, err)
	}
}

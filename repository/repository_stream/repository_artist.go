package repository_stream

import (
	"context"
	"errors"
	"time"

	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"github.com/soundpulse/soundpulse-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type artistRepository struct {
	db         mongo.Database
	collection string
}

func NewArtistRepository(db mongo.Database, collection string) stream_interface.ArtistRepository {
	return &artistRepository{
		db:         db,
		collection: collection,
	}
}

func (r *artistRepository) FindBySpotifyID(ctx context.Context, spotifyID string) (*stream_models.Artist, error) {
	coll := r.db.Collection(r.collection)

	var artist stream_models.Artist
	err := coll.FindOne(ctx, bson.M{"spotify_id": spotifyID}).Decode(&artist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindBySpotifyIDs(ctx context.Context, spotifyIDs []string) ([]stream_models.Artist, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"spotify_id": bson.M{"$in": spotifyIDs}})
	if err != nil {
		return nil, err
	}

	artists := make([]stream_models.Artist, 0)
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *stream_models.Artist) error {
	coll := r.db.Collection(r.collection)

	now := time.Now()
	artist.CreatedAt = now
	artist.UpdatedAt = now

	_, err := coll.InsertOne(ctx, artist)
	return err
}

// UpdateBySpotifyID 补丁更新，读改写不加文档锁：
// 单进程部署加上调度器的重入抑制保证同一实体每轮只有一次写入
func (r *artistRepository) UpdateBySpotifyID(ctx context.Context, spotifyID string, patch bson.M) error {
	coll := r.db.Collection(r.collection)

	patch["updated_at"] = time.Now()
	_, err := coll.UpdateOne(ctx, bson.M{"spotify_id": spotifyID}, bson.M{"$set": patch})
	return err
}

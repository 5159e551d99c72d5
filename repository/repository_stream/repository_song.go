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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type songRepository struct {
	db         mongo.Database
	collection string
}

func NewSongRepository(db mongo.Database, collection string) stream_interface.SongRepository {
	return &songRepository{
		db:         db,
		collection: collection,
	}
}

func (r *songRepository) FindBySpotifyID(ctx context.Context, spotifyID string) (*stream_models.Song, error) {
	coll := r.db.Collection(r.collection)

	var song stream_models.Song
	err := coll.FindOne(ctx, bson.M{"spotify_id": spotifyID}).Decode(&song)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// FindByISRC 返回共享同一isrc的全部版本记录
// 按created_at升序，使读取时归并的"后插入覆盖先插入"语义可复现
func (r *songRepository) FindByISRC(ctx context.Context, isrc string) ([]stream_models.Song, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"isrc": isrc},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}

	songs := make([]stream_models.Song, 0)
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *songRepository) FindByArtist(ctx context.Context, artistSpotifyID string) ([]stream_models.Song, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"artist_spotify_id": artistSpotifyID},
		options.Find().SetSort(bson.D{{Key: "total_streams", Value: -1}}))
	if err != nil {
		return nil, err
	}

	songs := make([]stream_models.Song, 0)
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *songRepository) Create(ctx context.Context, song *stream_models.Song) error {
	coll := r.db.Collection(r.collection)

	now := time.Now()
	song.CreatedAt = now
	song.UpdatedAt = now

	_, err := coll.InsertOne(ctx, song)
	return err
}

func (r *songRepository) UpdateBySpotifyID(ctx context.Context, spotifyID string, patch bson.M) error {
	coll := r.db.Collection(r.collection)

	patch["updated_at"] = time.Now()
	_, err := coll.UpdateOne(ctx, bson.M{"spotify_id": spotifyID}, bson.M{"$set": patch})
	return err
}

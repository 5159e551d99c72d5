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

type albumRepository struct {
	db         mongo.Database
	collection string
}

func NewAlbumRepository(db mongo.Database, collection string) stream_interface.AlbumRepository {
	return &albumRepository{
		db:         db,
		collection: collection,
	}
}

func (r *albumRepository) FindBySpotifyID(ctx context.Context, spotifyID string) (*stream_models.Album, error) {
	coll := r.db.Collection(r.collection)

	var album stream_models.Album
	err := coll.FindOne(ctx, bson.M{"spotify_id": spotifyID}).Decode(&album)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) FindByArtist(ctx context.Context, artistSpotifyID string) ([]stream_models.Album, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"artist_spotify_id": artistSpotifyID},
		options.Find().SetSort(bson.D{{Key: "total_streams", Value: -1}}))
	if err != nil {
		return nil, err
	}

	albums := make([]stream_models.Album, 0)
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *albumRepository) Create(ctx context.Context, album *stream_models.Album) error {
	coll := r.db.Collection(r.collection)

	now := time.Now()
	album.CreatedAt = now
	album.UpdatedAt = now

	_, err := coll.InsertOne(ctx, album)
	return err
}

func (r *albumRepository) UpdateBySpotifyID(ctx context.Context, spotifyID string, patch bson.M) error {
	coll := r.db.Collection(r.collection)

	patch["updated_at"] = time.Now()
	_, err := coll.UpdateOne(ctx, bson.M{"spotify_id": spotifyID}, bson.M{"$set": patch})
	return err
}

package repository_stream

import (
	"context"

	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"github.com/soundpulse/soundpulse-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type userFavoriteRepository struct {
	db         mongo.Database
	collection string
}

func NewUserFavoriteRepository(db mongo.Database, collection string) stream_interface.UserFavoriteRepository {
	return &userFavoriteRepository{
		db:         db,
		collection: collection,
	}
}

func (r *userFavoriteRepository) FindByUser(ctx context.Context, kindeID string) ([]stream_models.UserFavorite, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"kinde_id": kindeID})
	if err != nil {
		return nil, err
	}

	favorites := make([]stream_models.UserFavorite, 0)
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *userFavoriteRepository) IsFavorite(ctx context.Context, kindeID, favoriteType, spotifyID string) (bool, error) {
	coll := r.db.Collection(r.collection)

	count, err := coll.CountDocuments(ctx, bson.M{
		"kinde_id":   kindeID,
		"type":       favoriteType,
		"spotify_id": spotifyID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userFavoriteRepository) Create(ctx context.Context, favorite *stream_models.UserFavorite) error {
	coll := r.db.Collection(r.collection)

	_, err := coll.InsertOne(ctx, favorite)
	return err
}

func (r *userFavoriteRepository) Delete(ctx context.Context, kindeID, favoriteType, spotifyID string) error {
	coll := r.db.Collection(r.collection)

	deleted, err := coll.DeleteOne(ctx, bson.M{
		"kinde_id":   kindeID,
		"type":       favoriteType,
		"spotify_id": spotifyID,
	})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

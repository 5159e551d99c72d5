package repository_stream

import (
	"context"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"github.com/soundpulse/soundpulse-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type priorityArtistRepository struct {
	db         mongo.Database
	collection string
}

func NewPriorityArtistRepository(db mongo.Database, collection string) stream_interface.PriorityArtistRepository {
	return &priorityArtistRepository{
		db:         db,
		collection: collection,
	}
}

// List 按录入顺序返回整张名单，名单规模固定且很小，不分页
func (r *priorityArtistRepository) List(ctx context.Context) ([]stream_models.PriorityArtist, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}

	artists := make([]stream_models.PriorityArtist, 0)
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

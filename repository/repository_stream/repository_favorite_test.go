package repository_stream

import (
	"context"
	"testing"

	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// stubCollection 仅实现Delete路径所需行为，其余方法不会被触达
type stubCollection struct {
	deleteCount  int64
	deleteErr    error
	deleteFilter interface{}
}

func (s *stubCollection) FindOne(context.Context, interface{}) mongo.SingleResult { return nil }

func (s *stubCollection) Find(context.Context, interface{}, ...*options.FindOptions) (mongo.Cursor, error) {
	return nil, nil
}

func (s *stubCollection) InsertOne(context.Context, interface{}) (interface{}, error) {
	return nil, nil
}

func (s *stubCollection) UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongodriver.UpdateResult, error) {
	return nil, nil
}

func (s *stubCollection) DeleteOne(_ context.Context, filter interface{}) (int64, error) {
	s.deleteFilter = filter
	return s.deleteCount, s.deleteErr
}

func (s *stubCollection) CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error) {
	return 0, nil
}

func (s *stubCollection) Indexes() mongo.IndexView { return nil }

type stubDatabase struct {
	coll *stubCollection
}

func (s *stubDatabase) Collection(string) mongo.Collection { return s.coll }
func (s *stubDatabase) Client() mongo.Client               { return nil }

func TestUserFavoriteDeleteMissReturnsNotFound(t *testing.T) {
	coll := &stubCollection{deleteCount: 0}
	repo := NewUserFavoriteRepository(&stubDatabase{coll: coll}, "user_favorite")

	err := repo.Delete(context.Background(), "kinde|u1", "artist", "sp1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotNil(t, coll.deleteFilter)
}

func TestUserFavoriteDeleteHit(t *testing.T) {
	coll := &stubCollection{deleteCount: 1}
	repo := NewUserFavoriteRepository(&stubDatabase{coll: coll}, "user_favorite")

	err := repo.Delete(context.Background(), "kinde|u1", "song", "sp2")
	assert.NoError(t, err)
}

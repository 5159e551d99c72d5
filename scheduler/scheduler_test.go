package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

type fakeRoster struct {
	artists []stream_models.PriorityArtist
	err     error
}

func (f *fakeRoster) List(_ context.Context) ([]stream_models.PriorityArtist, error) {
	return f.artists, f.err
}

type fakeIngestor struct {
	calls []string
	fail  map[string]error
}

func (f *fakeIngestor) step(name, artistID, dateStamp string) error {
	key := fmt.Sprintf("%s:%s", name, artistID)
	f.calls = append(f.calls, key+"@"+dateStamp)
	return f.fail[key]
}

func (f *fakeIngestor) IngestArtistOverall(_ context.Context, artistID, dateStamp string) error {
	return f.step("overall", artistID, dateStamp)
}

func (f *fakeIngestor) IngestArtistAlbums(_ context.Context, artistID, dateStamp string) error {
	return f.step("albums", artistID, dateStamp)
}

func (f *fakeIngestor) IngestArtistSongs(_ context.Context, artistID, dateStamp string) error {
	return f.step("songs", artistID, dateStamp)
}

type fakeCache struct {
	flushed int
}

func (f *fakeCache) Get(_ context.Context, _ string) (string, bool, error) { return "", false, nil }
func (f *fakeCache) Set(_ context.Context, _, _ string, _ time.Duration) error {
	return nil
}
func (f *fakeCache) FlushAll(_ context.Context) error {
	f.flushed++
	return nil
}

func newTestScheduler(roster *fakeRoster, ingest *fakeIngestor, cache *fakeCache) *Scheduler {
	clock := MockClock{MockTime: time.Date(2025, 6, 3, 10, 30, 0, 0, time.UTC)}
	return New(roster, ingest, cache, clock, 0, "30 10 * * *", time.UTC)
}

func TestRunWalksRosterSequentially(t *testing.T) {
	roster := &fakeRoster{artists: []stream_models.PriorityArtist{
		{SpotifyID: "a1"}, {SpotifyID: "a2"},
	}}
	ingest := &fakeIngestor{fail: map[string]error{}}
	cache := &fakeCache{}

	results := newTestScheduler(roster, ingest, cache).Run(context.Background())

	require.Len(t, results, 2)
	assert.Equal(t, ArtistResult{ArtistID: "a1", Overall: true, Albums: true, Songs: true}, results[0])
	assert.Equal(t, ArtistResult{ArtistID: "a2", Overall: true, Albums: true, Songs: true}, results[1])

	// 每个艺术家严格按 汇总→专辑→单曲 顺序，归属日期为运行日减两天
	assert.Equal(t, []string{
		"overall:a1@01-06-2025",
		"albums:a1@01-06-2025",
		"songs:a1@01-06-2025",
		"overall:a2@01-06-2025",
		"albums:a2@01-06-2025",
		"songs:a2@01-06-2025",
	}, ingest.calls)
	assert.Equal(t, 1, cache.flushed)
}

func TestRunStepFailureDoesNotAbort(t *testing.T) {
	roster := &fakeRoster{artists: []stream_models.PriorityArtist{
		{SpotifyID: "a1"}, {SpotifyID: "a2"}, {SpotifyID: "a3"},
	}}
	ingest := &fakeIngestor{fail: map[string]error{
		"songs:a2": errors.New("scrape timeout"),
	}}
	cache := &fakeCache{}

	results := newTestScheduler(roster, ingest, cache).Run(context.Background())

	require.Len(t, results, 3)
	assert.True(t, results[0].Songs)
	// 失败只记录在结果里，其余艺术家照常处理
	assert.Equal(t, ArtistResult{ArtistID: "a2", Overall: true, Albums: true, Songs: false}, results[1])
	assert.True(t, results[2].Songs)
	assert.Equal(t, 1, cache.flushed)
}

func TestRunPersistenceFailureAborts(t *testing.T) {
	roster := &fakeRoster{artists: []stream_models.PriorityArtist{
		{SpotifyID: "a1"}, {SpotifyID: "a2"}, {SpotifyID: "a3"},
	}}
	ingest := &fakeIngestor{fail: map[string]error{
		"albums:a2": fmt.Errorf("%w: connection refused", domain.ErrPersistence),
	}}
	cache := &fakeCache{}

	results := newTestScheduler(roster, ingest, cache).Run(context.Background())

	// 存储故障后整轮终止，a3 不再被处理
	require.Len(t, results, 2)
	assert.Equal(t, ArtistResult{ArtistID: "a2", Overall: true, Albums: false, Songs: false}, results[1])
	assert.NotContains(t, ingest.calls, "songs:a2@01-06-2025")
	assert.NotContains(t, ingest.calls, "overall:a3@01-06-2025")
	assert.Equal(t, 0, cache.flushed)
}

func TestRunEmptyRoster(t *testing.T) {
	roster := &fakeRoster{}
	ingest := &fakeIngestor{fail: map[string]error{}}
	cache := &fakeCache{}

	results := newTestScheduler(roster, ingest, cache).Run(context.Background())

	assert.Empty(t, results)
	assert.Empty(t, ingest.calls)
	assert.Equal(t, 1, cache.flushed)
}

func TestRunRosterLoadFailure(t *testing.T) {
	roster := &fakeRoster{err: errors.New("mongo down")}
	ingest := &fakeIngestor{fail: map[string]error{}}
	cache := &fakeCache{}

	results := newTestScheduler(roster, ingest, cache).Run(context.Background())

	assert.Nil(t, results)
	assert.Empty(t, ingest.calls)
	assert.Equal(t, 0, cache.flushed)
}

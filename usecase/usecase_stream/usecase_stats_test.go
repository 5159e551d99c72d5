package usecase_stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

func newStatsFixture() (*fakeArtistRepo, *fakeSongRepo, *fakeAlbumRepo, *StatsUsecase) {
	artistRepo := newFakeArtistRepo()
	songRepo := newFakeSongRepo()
	albumRepo := newFakeAlbumRepo()
	uc := NewStatsUsecase(artistRepo, songRepo, albumRepo, 5*time.Second)
	return artistRepo, songRepo, albumRepo, uc
}

func TestStatsSongMergesISRCSiblings(t *testing.T) {
	_, songRepo, _, uc := newStatsFixture()

	original := stream_models.Song{
		SpotifyID:    "v1",
		ISRC:         "USUM71234567",
		TotalStreams: 100,
		DailyStreams: stream_models.DailySeries{"01-06-2025": 10},
	}
	reissue := stream_models.Song{
		SpotifyID:    "v2",
		ISRC:         "USUM71234567",
		TotalStreams: 150,
		DailyStreams: stream_models.DailySeries{"02-06-2025": 20},
	}
	songRepo.songs["v1"] = &original
	songRepo.byISRC["USUM71234567"] = []stream_models.Song{original, reissue}

	view, err := uc.Song(context.Background(), "v1")
	require.NoError(t, err)
	require.NotNil(t, view)

	// 规范版本取累计量最高者，日序列为各版本并集
	assert.Equal(t, "v2", view.SpotifyID)
	assert.Equal(t, stream_models.DailySeries{"01-06-2025": 10, "02-06-2025": 20}, view.DailyStreams)

	// 读时合并不回写存储
	assert.Empty(t, songRepo.patches)
	assert.Equal(t, stream_models.DailySeries{"01-06-2025": 10}, songRepo.songs["v1"].DailyStreams)
}

func TestStatsSongWithoutISRC(t *testing.T) {
	_, songRepo, _, uc := newStatsFixture()

	songRepo.songs["solo"] = &stream_models.Song{
		SpotifyID:    "solo",
		TotalStreams: 42,
		DailyStreams: stream_models.DailySeries{"01-06-2025": 4},
	}

	view, err := uc.Song(context.Background(), "solo")
	require.NoError(t, err)
	assert.Equal(t, "solo", view.SpotifyID)
	assert.Equal(t, int64(42), view.TotalStreams)
}

func TestStatsSongNotFound(t *testing.T) {
	_, _, _, uc := newStatsFixture()

	_, err := uc.Song(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStatsArtistPassthrough(t *testing.T) {
	artistRepo, _, _, uc := newStatsFixture()

	artistRepo.artists["a1"] = &stream_models.Artist{SpotifyID: "a1", Name: "Drake"}

	artist, err := uc.Artist(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "Drake", artist.Name)

	_, err = uc.Artist(context.Background(), "nobody")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

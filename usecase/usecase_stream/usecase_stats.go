package usecase_stream

import (
	"context"
	"time"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// StatsUsecase 持久化序列的读取侧
// 单曲按id读取时做isrc多版本归并，归并视图不回写
type StatsUsecase struct {
	artistRepo stream_interface.ArtistRepository
	songRepo   stream_interface.SongRepository
	albumRepo  stream_interface.AlbumRepository
	timeout    time.Duration
}

func NewStatsUsecase(
	artistRepo stream_interface.ArtistRepository,
	songRepo stream_interface.SongRepository,
	albumRepo stream_interface.AlbumRepository,
	timeout time.Duration,
) *StatsUsecase {
	return &StatsUsecase{
		artistRepo: artistRepo,
		songRepo:   songRepo,
		albumRepo:  albumRepo,
		timeout:    timeout,
	}
}

func (uc *StatsUsecase) Artist(ctx context.Context, spotifyID string) (*stream_models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.artistRepo.FindBySpotifyID(ctx, spotifyID)
}

func (uc *StatsUsecase) ArtistSongs(ctx context.Context, artistSpotifyID string) ([]stream_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.songRepo.FindByArtist(ctx, artistSpotifyID)
}

func (uc *StatsUsecase) ArtistAlbums(ctx context.Context, artistSpotifyID string) ([]stream_models.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.albumRepo.FindByArtist(ctx, artistSpotifyID)
}

// Song 按 spotify_id 读取单曲；记录带isrc时把同码的兄弟版本一并取出，
// 返回日序列归并后的规范版本视图
func (uc *StatsUsecase) Song(ctx context.Context, spotifyID string) (*stream_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	song, err := uc.songRepo.FindBySpotifyID(ctx, spotifyID)
	if err != nil {
		return nil, err
	}
	if song.ISRC == "" {
		return song, nil
	}

	versions, err := uc.songRepo.FindByISRC(ctx, song.ISRC)
	if err != nil {
		return nil, err
	}
	siblings := make([]stream_models.Song, 0, len(versions))
	for _, v := range versions {
		if v.SpotifyID != song.SpotifyID {
			siblings = append(siblings, v)
		}
	}
	return stream_models.ResolveCanonical(song, siblings), nil
}

func (uc *StatsUsecase) Album(ctx context.Context, spotifyID string) (*stream_models.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.albumRepo.FindBySpotifyID(ctx, spotifyID)
}

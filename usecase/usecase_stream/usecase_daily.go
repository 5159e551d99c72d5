package usecase_stream

import (
	"context"
	"time"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"github.com/soundpulse/soundpulse-backend/scraper"
)

// DailyUsecase 即时抓取透传：不落库，直接把解析后的表格行返回给API层
type DailyUsecase struct {
	fetcher stream_interface.TableFetcher
	timeout time.Duration
}

func NewDailyUsecase(fetcher stream_interface.TableFetcher, timeout time.Duration) *DailyUsecase {
	return &DailyUsecase{
		fetcher: fetcher,
		timeout: timeout,
	}
}

func (uc *DailyUsecase) ArtistSongs(ctx context.Context, artistID string) ([]stream_models.SongRow, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.fetcher.FetchTable(ctx, stream_models.CategorySongs, artistID)
	if err != nil {
		return nil, err
	}
	return scraper.ParseSongRows(raw), nil
}

func (uc *DailyUsecase) ArtistAlbums(ctx context.Context, artistID string) ([]stream_models.AlbumRow, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.fetcher.FetchTable(ctx, stream_models.CategoryAlbums, artistID)
	if err != nil {
		return nil, err
	}
	return scraper.ParseAlbumRows(raw), nil
}

func (uc *DailyUsecase) ArtistOverall(ctx context.Context, artistID string) ([]stream_models.OverallRow, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.fetcher.FetchTable(ctx, stream_models.CategoryOverall, artistID)
	if err != nil {
		return nil, err
	}
	return scraper.ParseOverallRows(raw), nil
}

// Leaderboard 全站榜单抓取（artists-leaderboard / listeners-leaderboard）
func (uc *DailyUsecase) Leaderboard(ctx context.Context, category stream_models.ScrapeCategory) ([]stream_models.LeaderboardRow, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.fetcher.FetchTable(ctx, category, "")
	if err != nil {
		return nil, err
	}
	return scraper.ParseLeaderboardRows(category, raw), nil
}

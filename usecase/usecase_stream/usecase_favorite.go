package usecase_stream

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

var ErrInvalidFavoriteType = errors.New("invalid favorite type")

// DashboardEntry 看板条目：收藏的艺术家 + 最近一日总播放量
type DashboardEntry struct {
	Artist      stream_models.Artist `json:"artist"`
	LatestDate  string               `json:"latestDate"`
	LatestDaily int64                `json:"latestDaily"`
}

// FavoriteUsecase 用户收藏与看板排序
type FavoriteUsecase struct {
	favoriteRepo stream_interface.UserFavoriteRepository
	artistRepo   stream_interface.ArtistRepository
	timeout      time.Duration
}

func NewFavoriteUsecase(
	favoriteRepo stream_interface.UserFavoriteRepository,
	artistRepo stream_interface.ArtistRepository,
	timeout time.Duration,
) *FavoriteUsecase {
	return &FavoriteUsecase{
		favoriteRepo: favoriteRepo,
		artistRepo:   artistRepo,
		timeout:      timeout,
	}
}

func (uc *FavoriteUsecase) List(ctx context.Context, kindeID string) ([]stream_models.UserFavorite, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.favoriteRepo.FindByUser(ctx, kindeID)
}

func (uc *FavoriteUsecase) IsFavorite(ctx context.Context, kindeID, favoriteType, spotifyID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if !stream_models.ValidFavoriteType(favoriteType) {
		return false, ErrInvalidFavoriteType
	}
	return uc.favoriteRepo.IsFavorite(ctx, kindeID, favoriteType, spotifyID)
}

func (uc *FavoriteUsecase) Add(ctx context.Context, favorite *stream_models.UserFavorite) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if !stream_models.ValidFavoriteType(favorite.Type) {
		return ErrInvalidFavoriteType
	}
	return uc.favoriteRepo.Create(ctx, favorite)
}

func (uc *FavoriteUsecase) Remove(ctx context.Context, kindeID, favoriteType, spotifyID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if !stream_models.ValidFavoriteType(favoriteType) {
		return ErrInvalidFavoriteType
	}
	return uc.favoriteRepo.Delete(ctx, kindeID, favoriteType, spotifyID)
}

// Dashboard 取用户收藏的艺术家，按最近一日总播放量降序排列
// 未入库的收藏（尚未被定时任务抓到）不出现在结果里
func (uc *FavoriteUsecase) Dashboard(ctx context.Context, kindeID string) ([]DashboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	favorites, err := uc.favoriteRepo.FindByUser(ctx, kindeID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(favorites))
	for _, fav := range favorites {
		if fav.Type == stream_models.FavoriteTypeArtist {
			ids = append(ids, fav.SpotifyID)
		}
	}
	if len(ids) == 0 {
		return []DashboardEntry{}, nil
	}

	artists, err := uc.artistRepo.FindBySpotifyIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]DashboardEntry, 0, len(artists))
	for _, artist := range artists {
		date, value, _ := artist.DailyTotalStreams.Latest()
		entries = append(entries, DashboardEntry{
			Artist:      artist,
			LatestDate:  date,
			LatestDaily: value,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LatestDaily > entries[j].LatestDaily
	})
	return entries, nil
}

package usecase_stream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"github.com/soundpulse/soundpulse-backend/scraper"
	"go.mongodb.org/mongo-driver/bson"
)

// IngestUsecase 把一个艺术家一次抓取的表格数据对账合并进存储
// 身份判定按 spotify_id 精确匹配：命中走补丁更新，未命中先查目录再建档；
// 目录查询失败只丢弃当前行，存储故障向上抛出终止本艺术家的当前步骤
type IngestUsecase struct {
	fetcher    stream_interface.TableFetcher
	catalog    stream_interface.Catalog
	artistRepo stream_interface.ArtistRepository
	songRepo   stream_interface.SongRepository
	albumRepo  stream_interface.AlbumRepository
	timeout    time.Duration
}

func NewIngestUsecase(
	fetcher stream_interface.TableFetcher,
	catalog stream_interface.Catalog,
	artistRepo stream_interface.ArtistRepository,
	songRepo stream_interface.SongRepository,
	albumRepo stream_interface.AlbumRepository,
	timeout time.Duration,
) *IngestUsecase {
	return &IngestUsecase{
		fetcher:    fetcher,
		catalog:    catalog,
		artistRepo: artistRepo,
		songRepo:   songRepo,
		albumRepo:  albumRepo,
		timeout:    timeout,
	}
}

// IngestArtistOverall 抓取艺术家汇总表，合并四条角色日序列并刷新目录元数据
func (uc *IngestUsecase) IngestArtistOverall(ctx context.Context, artistID, dateStamp string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.fetcher.FetchTable(ctx, stream_models.CategoryOverall, artistID)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	rows := scraper.ParseOverallRows(raw)

	var totals, daily *stream_models.OverallRow
	for i := range rows {
		switch rows[i].Type {
		case stream_models.OverallRowStreams:
			totals = &rows[i]
		case stream_models.OverallRowDaily:
			daily = &rows[i]
		}
	}
	if totals == nil && daily == nil {
		return nil
	}

	catalogArtist, err := uc.catalog.Artist(ctx, artistID)
	if err != nil {
		return err
	}

	artist, err := uc.artistRepo.FindBySpotifyID(ctx, artistID)
	if errors.Is(err, domain.ErrNotFound) {
		if err := uc.artistRepo.Create(ctx, newArtist(artistID, catalogArtist, totals, daily, dateStamp)); err != nil {
			return persistence(err)
		}
		return nil
	}
	if err != nil {
		return persistence(err)
	}

	patch := bson.M{
		"name":       catalogArtist.Name,
		"followers":  catalogArtist.Followers,
		"popularity": catalogArtist.Popularity,
		"genres":     catalogArtist.Genres,
	}
	if catalogArtist.Image != "" {
		patch["image"] = catalogArtist.Image
	}
	if totals != nil {
		setKnown(patch, "total_streams", totals.Total)
		setKnown(patch, "lead_streams", totals.Lead)
		setKnown(patch, "solo_streams", totals.Solo)
		setKnown(patch, "feature_streams", totals.Feature)
	}
	if daily != nil {
		mergeKnown(patch, "daily_total_streams", artist.DailyTotalStreams, dateStamp, daily.Total)
		mergeKnown(patch, "daily_lead_streams", artist.DailyLeadStreams, dateStamp, daily.Lead)
		mergeKnown(patch, "daily_solo_streams", artist.DailySoloStreams, dateStamp, daily.Solo)
		mergeKnown(patch, "daily_feature_streams", artist.DailyFeatureStreams, dateStamp, daily.Feature)
	}
	if err := uc.artistRepo.UpdateBySpotifyID(ctx, artistID, patch); err != nil {
		return persistence(err)
	}
	return nil
}

// IngestArtistSongs 抓取单曲表逐行对账，未知单曲先查目录补全isrc/封面再建档
func (uc *IngestUsecase) IngestArtistSongs(ctx context.Context, artistID, dateStamp string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.fetcher.FetchTable(ctx, stream_models.CategorySongs, artistID)
	if err != nil {
		return err
	}

	for _, row := range scraper.ParseSongRows(raw) {
		song, err := uc.songRepo.FindBySpotifyID(ctx, row.SpotifyID)
		if errors.Is(err, domain.ErrNotFound) {
			track, lookupErr := uc.catalog.Track(ctx, row.SpotifyID)
			if lookupErr != nil {
				// 目录失败只放弃本行，表内其余行继续对账
				log.Printf("skipping song %s: catalog lookup failed: %v", row.SpotifyID, lookupErr)
				continue
			}
			newSong := &stream_models.Song{
				SpotifyID:       row.SpotifyID,
				Title:           row.Title,
				ArtistSpotifyID: artistID,
				ISRC:            track.ISRC,
				Image:           track.Image,
				DailyStreams:    stream_models.DailySeries{},
			}
			if row.Total != nil {
				newSong.TotalStreams = *row.Total
			}
			if row.Daily != nil {
				newSong.DailyStreams = newSong.DailyStreams.Merge(dateStamp, *row.Daily)
			}
			if err := uc.songRepo.Create(ctx, newSong); err != nil {
				return persistence(err)
			}
			continue
		}
		if err != nil {
			return persistence(err)
		}

		patch := bson.M{}
		setKnown(patch, "total_streams", row.Total)
		mergeKnown(patch, "daily_streams", song.DailyStreams, dateStamp, row.Daily)
		if len(patch) == 0 {
			continue
		}
		if err := uc.songRepo.UpdateBySpotifyID(ctx, row.SpotifyID, patch); err != nil {
			return persistence(err)
		}
	}
	return nil
}

// IngestArtistAlbums 抓取专辑表逐行对账
func (uc *IngestUsecase) IngestArtistAlbums(ctx context.Context, artistID, dateStamp string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.fetcher.FetchTable(ctx, stream_models.CategoryAlbums, artistID)
	if err != nil {
		return err
	}

	for _, row := range scraper.ParseAlbumRows(raw) {
		album, err := uc.albumRepo.FindBySpotifyID(ctx, row.SpotifyID)
		if errors.Is(err, domain.ErrNotFound) {
			catalogAlbum, lookupErr := uc.catalog.Album(ctx, row.SpotifyID)
			if lookupErr != nil {
				log.Printf("skipping album %s: catalog lookup failed: %v", row.SpotifyID, lookupErr)
				continue
			}
			newAlbum := &stream_models.Album{
				SpotifyID:       row.SpotifyID,
				Title:           row.Title,
				ArtistSpotifyID: artistID,
				Image:           catalogAlbum.Image,
				DailyStreams:    stream_models.DailySeries{},
			}
			if row.Total != nil {
				newAlbum.TotalStreams = *row.Total
			}
			if row.Daily != nil {
				newAlbum.DailyStreams = newAlbum.DailyStreams.Merge(dateStamp, *row.Daily)
			}
			if err := uc.albumRepo.Create(ctx, newAlbum); err != nil {
				return persistence(err)
			}
			continue
		}
		if err != nil {
			return persistence(err)
		}

		patch := bson.M{}
		setKnown(patch, "total_streams", row.Total)
		mergeKnown(patch, "daily_streams", album.DailyStreams, dateStamp, row.Daily)
		if len(patch) == 0 {
			continue
		}
		if err := uc.albumRepo.UpdateBySpotifyID(ctx, row.SpotifyID, patch); err != nil {
			return persistence(err)
		}
	}
	return nil
}

// newArtist 以目录元数据+首次抓取数据建档
func newArtist(artistID string, catalogArtist *stream_models.CatalogArtist, totals, daily *stream_models.OverallRow, dateStamp string) *stream_models.Artist {
	artist := &stream_models.Artist{
		SpotifyID:           artistID,
		Name:                catalogArtist.Name,
		Followers:           catalogArtist.Followers,
		Popularity:          catalogArtist.Popularity,
		Genres:              catalogArtist.Genres,
		Image:               catalogArtist.Image,
		DailyTotalStreams:   stream_models.DailySeries{},
		DailyLeadStreams:    stream_models.DailySeries{},
		DailySoloStreams:    stream_models.DailySeries{},
		DailyFeatureStreams: stream_models.DailySeries{},
	}
	if totals != nil {
		artist.TotalStreams = totals.Total
		artist.LeadStreams = totals.Lead
		artist.SoloStreams = totals.Solo
		artist.FeatureStreams = totals.Feature
	}
	if daily != nil {
		if daily.Total != nil {
			artist.DailyTotalStreams = artist.DailyTotalStreams.Merge(dateStamp, *daily.Total)
		}
		if daily.Lead != nil {
			artist.DailyLeadStreams = artist.DailyLeadStreams.Merge(dateStamp, *daily.Lead)
		}
		if daily.Solo != nil {
			artist.DailySoloStreams = artist.DailySoloStreams.Merge(dateStamp, *daily.Solo)
		}
		if daily.Feature != nil {
			artist.DailyFeatureStreams = artist.DailyFeatureStreams.Merge(dateStamp, *daily.Feature)
		}
	}
	return artist
}

// persistence 标记存储故障，调度器据此终止整轮运行
func persistence(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
}

// setKnown 未知值（解析失败）不写入补丁，避免把未知误作0覆盖旧值
func setKnown(patch bson.M, key string, value *int64) {
	if value != nil {
		patch[key] = *value
	}
}

// mergeKnown 对一条日序列做单日期合并后放入补丁，值未知则序列不动
func mergeKnown(patch bson.M, key string, series stream_models.DailySeries, dateStamp string, value *int64) {
	if value == nil {
		return
	}
	if series == nil {
		series = stream_models.DailySeries{}
	}
	patch[key] = series.Merge(dateStamp, *value)
}

package usecase_stream

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// 测试替身：内存版仓储与固定应答的抓取/目录客户端

type fakeFetcher struct {
	tables map[stream_models.ScrapeCategory][]stream_models.RawRow
	err    error
}

func (f *fakeFetcher) FetchTable(_ context.Context, category stream_models.ScrapeCategory, _ string) ([]stream_models.RawRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tables[category], nil
}

type fakeCatalog struct {
	artists map[string]*stream_models.CatalogArtist
	tracks  map[string]*stream_models.CatalogTrack
	albums  map[string]*stream_models.CatalogAlbum
	err     error
}

func (f *fakeCatalog) Artist(_ context.Context, spotifyID string) (*stream_models.CatalogArtist, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.artists[spotifyID]; ok {
		return a, nil
	}
	return nil, errors.New("catalog: artist not found")
}

func (f *fakeCatalog) Track(_ context.Context, spotifyID string) (*stream_models.CatalogTrack, error) {
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.tracks[spotifyID]; ok {
		return t, nil
	}
	return nil, errors.New("catalog: track not found")
}

func (f *fakeCatalog) Album(_ context.Context, spotifyID string) (*stream_models.CatalogAlbum, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.albums[spotifyID]; ok {
		return a, nil
	}
	return nil, errors.New("catalog: album not found")
}

type fakeArtistRepo struct {
	artists map[string]*stream_models.Artist
	patches map[string][]bson.M
	err     error
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{
		artists: map[string]*stream_models.Artist{},
		patches: map[string][]bson.M{},
	}
}

func (f *fakeArtistRepo) FindBySpotifyID(_ context.Context, spotifyID string) (*stream_models.Artist, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.artists[spotifyID]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeArtistRepo) FindBySpotifyIDs(_ context.Context, spotifyIDs []string) ([]stream_models.Artist, error) {
	if f.err != nil {
		return nil, f.err
	}
	found := make([]stream_models.Artist, 0, len(spotifyIDs))
	for _, id := range spotifyIDs {
		if a, ok := f.artists[id]; ok {
			found = append(found, *a)
		}
	}
	return found, nil
}

func (f *fakeArtistRepo) Create(_ context.Context, artist *stream_models.Artist) error {
	if f.err != nil {
		return f.err
	}
	f.artists[artist.SpotifyID] = artist
	return nil
}

func (f *fakeArtistRepo) UpdateBySpotifyID(_ context.Context, spotifyID string, patch bson.M) error {
	if f.err != nil {
		return f.err
	}
	f.patches[spotifyID] = append(f.patches[spotifyID], patch)
	return nil
}

type fakeSongRepo struct {
	songs   map[string]*stream_models.Song
	byISRC  map[string][]stream_models.Song
	patches map[string][]bson.M
	err     error
}

func newFakeSongRepo() *fakeSongRepo {
	return &fakeSongRepo{
		songs:   map[string]*stream_models.Song{},
		byISRC:  map[string][]stream_models.Song{},
		patches: map[string][]bson.M{},
	}
}

func (f *fakeSongRepo) FindBySpotifyID(_ context.Context, spotifyID string) (*stream_models.Song, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.songs[spotifyID]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSongRepo) FindByISRC(_ context.Context, isrc string) ([]stream_models.Song, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byISRC[isrc], nil
}

func (f *fakeSongRepo) FindByArtist(_ context.Context, artistSpotifyID string) ([]stream_models.Song, error) {
	if f.err != nil {
		return nil, f.err
	}
	found := make([]stream_models.Song, 0)
	for _, s := range f.songs {
		if s.ArtistSpotifyID == artistSpotifyID {
			found = append(found, *s)
		}
	}
	return found, nil
}

func (f *fakeSongRepo) Create(_ context.Context, song *stream_models.Song) error {
	if f.err != nil {
		return f.err
	}
	f.songs[song.SpotifyID] = song
	return nil
}

// UpdateBySpotifyID 记录补丁并套用到内存文档，便于断言多轮运行后的最终状态
func (f *fakeSongRepo) UpdateBySpotifyID(_ context.Context, spotifyID string, patch bson.M) error {
	if f.err != nil {
		return f.err
	}
	f.patches[spotifyID] = append(f.patches[spotifyID], patch)
	if song, ok := f.songs[spotifyID]; ok {
		if total, ok := patch["total_streams"].(int64); ok {
			song.TotalStreams = total
		}
		if series, ok := patch["daily_streams"].(stream_models.DailySeries); ok {
			song.DailyStreams = series
		}
	}
	return nil
}

type fakeAlbumRepo struct {
	albums  map[string]*stream_models.Album
	patches map[string][]bson.M
	err     error
}

func newFakeAlbumRepo() *fakeAlbumRepo {
	return &fakeAlbumRepo{
		albums:  map[string]*stream_models.Album{},
		patches: map[string][]bson.M{},
	}
}

func (f *fakeAlbumRepo) FindBySpotifyID(_ context.Context, spotifyID string) (*stream_models.Album, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.albums[spotifyID]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAlbumRepo) FindByArtist(_ context.Context, artistSpotifyID string) ([]stream_models.Album, error) {
	if f.err != nil {
		return nil, f.err
	}
	found := make([]stream_models.Album, 0)
	for _, a := range f.albums {
		if a.ArtistSpotifyID == artistSpotifyID {
			found = append(found, *a)
		}
	}
	return found, nil
}

func (f *fakeAlbumRepo) Create(_ context.Context, album *stream_models.Album) error {
	if f.err != nil {
		return f.err
	}
	f.albums[album.SpotifyID] = album
	return nil
}

func (f *fakeAlbumRepo) UpdateBySpotifyID(_ context.Context, spotifyID string, patch bson.M) error {
	if f.err != nil {
		return f.err
	}
	f.patches[spotifyID] = append(f.patches[spotifyID], patch)
	if album, ok := f.albums[spotifyID]; ok {
		if total, ok := patch["total_streams"].(int64); ok {
			album.TotalStreams = total
		}
		if series, ok := patch["daily_streams"].(stream_models.DailySeries); ok {
			album.DailyStreams = series
		}
	}
	return nil
}

type fakeFavoriteRepo struct {
	favorites []stream_models.UserFavorite
	err       error
}

func (f *fakeFavoriteRepo) FindByUser(_ context.Context, kindeID string) ([]stream_models.UserFavorite, error) {
	if f.err != nil {
		return nil, f.err
	}
	found := make([]stream_models.UserFavorite, 0)
	for _, fav := range f.favorites {
		if fav.KindeID == kindeID {
			found = append(found, fav)
		}
	}
	return found, nil
}

func (f *fakeFavoriteRepo) IsFavorite(_ context.Context, kindeID, favoriteType, spotifyID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, fav := range f.favorites {
		if fav.KindeID == kindeID && fav.Type == favoriteType && fav.SpotifyID == spotifyID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite *stream_models.UserFavorite) error {
	if f.err != nil {
		return f.err
	}
	f.favorites = append(f.favorites, *favorite)
	return nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, kindeID, favoriteType, spotifyID string) error {
	if f.err != nil {
		return f.err
	}
	for i, fav := range f.favorites {
		if fav.KindeID == kindeID && fav.Type == favoriteType && fav.SpotifyID == spotifyID {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

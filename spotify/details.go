package spotify

import (
	"context"
	"fmt"

	spotifyapi "github.com/zmb3/spotify/v2"
)

// 目录透传接口沿用固定市场，与前端展示市场保持一致
const market = "ES"

// ArtistDetails 艺术家详情透传载荷：基础信息、专辑、单曲、热门曲目
type ArtistDetails struct {
	GeneralDetails *spotifyapi.FullArtist      `json:"generalDetails"`
	Albums         *spotifyapi.SimpleAlbumPage `json:"albums"`
	Singles        *spotifyapi.SimpleAlbumPage `json:"singles"`
	TopTracks      []spotifyapi.FullTrack      `json:"topTracks"`
}

// ArtistDetails 聚合一个艺术家的目录数据，任一子查询失败整体失败
func (c *Client) ArtistDetails(ctx context.Context, spotifyID string) (*ArtistDetails, error) {
	id := spotifyapi.ID(spotifyID)

	general, err := c.api.GetArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist %s: %w", spotifyID, translate(err))
	}

	albums, err := c.api.GetArtistAlbums(ctx, id, []spotifyapi.AlbumType{spotifyapi.AlbumTypeAlbum}, spotifyapi.Market(market), spotifyapi.Limit(50))
	if err != nil {
		return nil, fmt.Errorf("failed to get artist albums %s: %w", spotifyID, translate(err))
	}

	singles, err := c.api.GetArtistAlbums(ctx, id, []spotifyapi.AlbumType{spotifyapi.AlbumTypeSingle}, spotifyapi.Market(market), spotifyapi.Limit(25))
	if err != nil {
		return nil, fmt.Errorf("failed to get artist singles %s: %w", spotifyID, translate(err))
	}

	topTracks, err := c.api.GetArtistsTopTracks(ctx, id, market)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist top tracks %s: %w", spotifyID, translate(err))
	}

	return &ArtistDetails{
		GeneralDetails: general,
		Albums:         albums,
		Singles:        singles,
		TopTracks:      topTracks,
	}, nil
}

// TopTracks 艺术家热门曲目
func (c *Client) TopTracks(ctx context.Context, spotifyID string) ([]spotifyapi.FullTrack, error) {
	tracks, err := c.api.GetArtistsTopTracks(ctx, spotifyapi.ID(spotifyID), market)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist top tracks %s: %w", spotifyID, translate(err))
	}
	return tracks, nil
}

// TrackDetails 单曲完整目录数据
func (c *Client) TrackDetails(ctx context.Context, spotifyID string) (*spotifyapi.FullTrack, error) {
	track, err := c.api.GetTrack(ctx, spotifyapi.ID(spotifyID))
	if err != nil {
		return nil, fmt.Errorf("failed to get track %s: %w", spotifyID, translate(err))
	}
	return track, nil
}

// AlbumDetails 专辑完整目录数据
func (c *Client) AlbumDetails(ctx context.Context, spotifyID string) (*spotifyapi.FullAlbum, error) {
	album, err := c.api.GetAlbum(ctx, spotifyapi.ID(spotifyID))
	if err != nil {
		return nil, fmt.Errorf("failed to get album %s: %w", spotifyID, translate(err))
	}
	return album, nil
}

// NewReleases 新发行专辑列表
func (c *Client) NewReleases(ctx context.Context) (*spotifyapi.SimpleAlbumPage, error) {
	releases, err := c.api.NewReleases(ctx, spotifyapi.Limit(50))
	if err != nil {
		return nil, fmt.Errorf("failed to get new releases: %w", translate(err))
	}
	return releases, nil
}

package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	spotifyapi "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// 目录查询的可判别错误
var (
	ErrNotFound    = errors.New("catalog entity not found")
	ErrRateLimited = errors.New("catalog rate limited")
)

// Client 基于 client credentials 授权的 Spotify 目录客户端
// token 由 oauth2 transport 自动续期
type Client struct {
	api *spotifyapi.Client
}

func NewClient(ctx context.Context, clientID, clientSecret string) *Client {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	httpClient := config.Client(ctx)
	return &Client{api: spotifyapi.New(httpClient)}
}

// translate 将 Spotify API 错误归一为可判别哨兵
func translate(err error) error {
	var apiErr spotifyapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusTooManyRequests:
			return ErrRateLimited
		}
	}
	return err
}

func firstImageURL(images []spotifyapi.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

func (c *Client) Artist(ctx context.Context, spotifyID string) (*stream_models.CatalogArtist, error) {
	artist, err := c.api.GetArtist(ctx, spotifyapi.ID(spotifyID))
	if err != nil {
		return nil, fmt.Errorf("failed to get artist %s: %w", spotifyID, translate(err))
	}
	return &stream_models.CatalogArtist{
		Name:       artist.Name,
		Followers:  int64(artist.Followers.Count),
		Popularity: int(artist.Popularity),
		Genres:     artist.Genres,
		Image:      firstImageURL(artist.Images),
	}, nil
}

func (c *Client) Track(ctx context.Context, spotifyID string) (*stream_models.CatalogTrack, error) {
	track, err := c.api.GetTrack(ctx, spotifyapi.ID(spotifyID))
	if err != nil {
		return nil, fmt.Errorf("failed to get track %s: %w", spotifyID, translate(err))
	}
	return &stream_models.CatalogTrack{
		Title: track.Name,
		ISRC:  track.ExternalIDs["isrc"],
		Image: firstImageURL(track.Album.Images),
	}, nil
}

func (c *Client) Album(ctx context.Context, spotifyID string) (*stream_models.CatalogAlbum, error) {
	album, err := c.api.GetAlbum(ctx, spotifyapi.ID(spotifyID))
	if err != nil {
		return nil, fmt.Errorf("failed to get album %s: %w", spotifyID, translate(err))
	}
	return &stream_models.CatalogAlbum{
		Title: album.Name,
		Image: firstImageURL(album.Images),
	}, nil
}

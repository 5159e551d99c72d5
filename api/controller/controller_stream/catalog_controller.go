package controller_stream

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/api/controller"
	"github.com/soundpulse/soundpulse-backend/spotify"
)

// CatalogController Spotify 元数据查询透传
type CatalogController struct {
	Spotify *spotify.Client
}

func NewCatalogController(client *spotify.Client) *CatalogController {
	return &CatalogController{Spotify: client}
}

func (c *CatalogController) GetArtist(ctx *gin.Context) {
	spotifyID := ctx.Param("spotifyId")
	if spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_SPOTIFY_ID", "spotifyId is required")
		return
	}

	details, err := c.Spotify.ArtistDetails(ctx.Request.Context(), spotifyID)
	if err != nil {
		c.catalogError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "artist", details, 1)
}

func (c *CatalogController) GetArtistTopTracks(ctx *gin.Context) {
	spotifyID := ctx.Param("spotifyId")
	if spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_SPOTIFY_ID", "spotifyId is required")
		return
	}

	tracks, err := c.Spotify.TopTracks(ctx.Request.Context(), spotifyID)
	if err != nil {
		c.catalogError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "tracks", tracks, len(tracks))
}

func (c *CatalogController) GetTrack(ctx *gin.Context) {
	spotifyID := ctx.Param("spotifyId")
	if spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_SPOTIFY_ID", "spotifyId is required")
		return
	}

	track, err := c.Spotify.TrackDetails(ctx.Request.Context(), spotifyID)
	if err != nil {
		c.catalogError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "track", track, 1)
}

func (c *CatalogController) GetAlbum(ctx *gin.Context) {
	spotifyID := ctx.Param("spotifyId")
	if spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_SPOTIFY_ID", "spotifyId is required")
		return
	}

	album, err := c.Spotify.AlbumDetails(ctx.Request.Context(), spotifyID)
	if err != nil {
		c.catalogError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "album", album, 1)
}

func (c *CatalogController) GetNewReleases(ctx *gin.Context) {
	releases, err := c.Spotify.NewReleases(ctx.Request.Context())
	if err != nil {
		c.catalogError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "releases", releases, len(releases.Albums))
}

func (c *CatalogController) catalogError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, spotify.ErrNotFound):
		controller.ErrorResponse(ctx, http.StatusNotFound, "CATALOG_NOT_FOUND", "resource not found on spotify")
	case errors.Is(err, spotify.ErrRateLimited):
		controller.ErrorResponse(ctx, http.StatusTooManyRequests, "CATALOG_RATE_LIMITED", "spotify rate limit reached")
	default:
		controller.ErrorResponse(ctx, http.StatusBadGateway, "CATALOG_ERROR", err.Error())
	}
}

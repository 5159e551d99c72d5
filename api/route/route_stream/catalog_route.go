package route_stream

import (
	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/api/controller/controller_stream"
	"github.com/soundpulse/soundpulse-backend/spotify"
)

func NewCatalogRouter(
	client *spotify.Client,
	group *gin.RouterGroup,
) {
	ctrl := controller_stream.NewCatalogController(client)

	catalogGroup := group.Group("/catalog")
	{
		catalogGroup.GET("/artist/:spotifyId", ctrl.GetArtist)
		catalogGroup.GET("/artist/:spotifyId/top-tracks", ctrl.GetArtistTopTracks)
		catalogGroup.GET("/track/:spotifyId", ctrl.GetTrack)
		catalogGroup.GET("/album/:spotifyId", ctrl.GetAlbum)
		catalogGroup.GET("/new-releases", ctrl.GetNewReleases)
	}
}

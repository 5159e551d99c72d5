package route_stream

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/api/controller/controller_stream"
	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/mongo"
	"github.com/soundpulse/soundpulse-backend/repository/repository_stream"
	"github.com/soundpulse/soundpulse-backend/usecase/usecase_stream"
)

func NewStatsRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	artistRepo := repository_stream.NewArtistRepository(db, domain.CollectionStreamArtist)
	songRepo := repository_stream.NewSongRepository(db, domain.CollectionStreamSong)
	albumRepo := repository_stream.NewAlbumRepository(db, domain.CollectionStreamAlbum)

	uc := usecase_stream.NewStatsUsecase(artistRepo, songRepo, albumRepo, timeout)
	ctrl := controller_stream.NewStatsController(uc)

	statsGroup := group.Group("/stats")
	{
		statsGroup.GET("/artist/:spotifyId", ctrl.GetArtist)
		statsGroup.GET("/artist/:spotifyId/songs", ctrl.GetArtistSongs)
		statsGroup.GET("/artist/:spotifyId/albums", ctrl.GetArtistAlbums)
		statsGroup.GET("/song/:spotifyId", ctrl.GetSong)
		statsGroup.GET("/album/:spotifyId", ctrl.GetAlbum)
	}
}

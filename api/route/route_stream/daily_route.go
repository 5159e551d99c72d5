package route_stream

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/api/controller/controller_stream"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/usecase/usecase_stream"
)

func NewDailyRouter(
	timeout time.Duration,
	fetcher stream_interface.TableFetcher,
	group *gin.RouterGroup,
) {
	uc := usecase_stream.NewDailyUsecase(fetcher, timeout)
	ctrl := controller_stream.NewDailyController(uc)

	dailyGroup := group.Group("/daily")
	{
		dailyGroup.GET("/artist/:artistId/songs", ctrl.GetArtistSongs)
		dailyGroup.GET("/artist/:artistId/albums", ctrl.GetArtistAlbums)
		dailyGroup.GET("/artist/:artistId/overall", ctrl.GetArtistOverall)
	}
	leaderboardGroup := group.Group("/leaderboard")
	{
		leaderboardGroup.GET("/artists", ctrl.GetArtistsLeaderboard)
		leaderboardGroup.GET("/listeners", ctrl.GetListenersLeaderboard)
	}
}

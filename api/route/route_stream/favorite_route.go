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

func NewFavoriteRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	favoriteRepo := repository_stream.NewUserFavoriteRepository(db, domain.CollectionUserFavorite)
	artistRepo := repository_stream.NewArtistRepository(db, domain.CollectionStreamArtist)

	uc := usecase_stream.NewFavoriteUsecase(favoriteRepo, artistRepo, timeout)
	ctrl := controller_stream.NewFavoriteController(uc)

	favoriteGroup := group.Group("/user")
	{
		favoriteGroup.GET("/favorites", ctrl.GetFavorites)
		favoriteGroup.GET("/favorites/:type/:spotifyId", ctrl.GetIsFavorite)
		favoriteGroup.POST("/favorites", ctrl.AddFavorite)
		favoriteGroup.DELETE("/favorites/:type/:spotifyId", ctrl.RemoveFavorite)
		favoriteGroup.GET("/dashboard", ctrl.GetDashboard)
	}
}

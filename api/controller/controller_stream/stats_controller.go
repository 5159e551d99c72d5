package controller_stream

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/api/controller"
	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/usecase/usecase_stream"
)

// StatsController 读取已落库的历史流量数据
type StatsController struct {
	StatsUsecase *usecase_stream.StatsUsecase
}

func NewStatsController(uc *usecase_stream.StatsUsecase) *StatsController {
	return &StatsController{StatsUsecase: uc}
}

func (c *StatsController) GetArtist(ctx *gin.Context) {
	spotifyID := ctx.Param("spotifyId")
	if spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_SPOTIFY_ID", "spotifyId is required")
		return
	}

	artist, err := c.StatsUsecase.Artist(ctx.Request.Context(), spotifyID)
	if err != nil {
		// 未入库不是错误：尚未被定时任务抓到的实体返回空载荷
		if errors.Is(err, domain.ErrNotFound) {
			controller.SuccessResponse(ctx, "artist", nil, 0)
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "artist", artist, 1)
}

func (c *StatsController) GetArtistSongs(ctx *gin.Context) {
	spotifyID := ctx.Param("spotifyId")
	if spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_SPOTIFY_ID", "spotifyId is required")
		return
	}

	songs, err := c.StatsUsecase.ArtistSongs(ctx.Request.Context(), spotifyID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "songs", songs, len(songs))
}

func (c *StatsController) GetArtistAlbums(ctx *gin.Context) {
	spotifyID := ctx.Param("spotifyId")
	if spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_SPOTIFY_ID", "spotifyId is required")
		return
	}

	albums, err := c.StatsUsecase.ArtistAlbums(ctx.Request.Context(), spotifyID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "albums", albums, len(albums))
}

// GetSong 返回合并同 ISRC 各版本日增序列后的规范视图
func (c *StatsController) GetSong(ctx *gin.Context) {
	spotifyID := ctx.Param("spotifyId")
	if spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_SPOTIFY_ID", "spotifyId is required")
		return
	}

	song, err := c.StatsUsecase.Song(ctx.Request.Context(), spotifyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			controller.SuccessResponse(ctx, "song", nil, 0)
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "song", song, 1)
}

func (c *StatsController) GetAlbum(ctx *gin.Context) {
	spotifyID := ctx.Param("spotifyId")
	if spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_SPOTIFY_ID", "spotifyId is required")
		return
	}

	album, err := c.StatsUsecase.Album(ctx.Request.Context(), spotifyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			controller.SuccessResponse(ctx, "album", nil, 0)
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "album", album, 1)
}

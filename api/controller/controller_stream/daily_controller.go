package controller_stream

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/api/controller"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"github.com/soundpulse/soundpulse-backend/usecase/usecase_stream"
)

// DailyController 直接回源抓取当日榜单页，不落库
type DailyController struct {
	DailyUsecase *usecase_stream.DailyUsecase
}

func NewDailyController(uc *usecase_stream.DailyUsecase) *DailyController {
	return &DailyController{DailyUsecase: uc}
}

func (c *DailyController) GetArtistSongs(ctx *gin.Context) {
	artistID := ctx.Param("artistId")
	if artistID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_ARTIST_ID", "artistId is required")
		return
	}

	rows, err := c.DailyUsecase.ArtistSongs(ctx.Request.Context(), artistID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadGateway, "SCRAPE_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "songs", rows, len(rows))
}

func (c *DailyController) GetArtistAlbums(ctx *gin.Context) {
	artistID := ctx.Param("artistId")
	if artistID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_ARTIST_ID", "artistId is required")
		return
	}

	rows, err := c.DailyUsecase.ArtistAlbums(ctx.Request.Context(), artistID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadGateway, "SCRAPE_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "albums", rows, len(rows))
}

func (c *DailyController) GetArtistOverall(ctx *gin.Context) {
	artistID := ctx.Param("artistId")
	if artistID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_ARTIST_ID", "artistId is required")
		return
	}

	rows, err := c.DailyUsecase.ArtistOverall(ctx.Request.Context(), artistID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadGateway, "SCRAPE_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "overall", rows, len(rows))
}

func (c *DailyController) GetArtistsLeaderboard(ctx *gin.Context) {
	c.leaderboard(ctx, stream_models.CategoryArtistsLeaderboard)
}

func (c *DailyController) GetListenersLeaderboard(ctx *gin.Context) {
	c.leaderboard(ctx, stream_models.CategoryListenersLeaderboard)
}

func (c *DailyController) leaderboard(ctx *gin.Context, category stream_models.ScrapeCategory) {
	rows, err := c.DailyUsecase.Leaderboard(ctx.Request.Context(), category)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadGateway, "SCRAPE_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "leaderboard", rows, len(rows))
}

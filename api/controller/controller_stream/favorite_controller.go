package controller_stream

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/api/controller"
	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
	"github.com/soundpulse/soundpulse-backend/usecase/usecase_stream"
)

// FavoriteController 用户收藏与仪表盘，kinde 用户 ID 由鉴权中间件注入
type FavoriteController struct {
	FavoriteUsecase *usecase_stream.FavoriteUsecase
}

func NewFavoriteController(uc *usecase_stream.FavoriteUsecase) *FavoriteController {
	return &FavoriteController{FavoriteUsecase: uc}
}

func (c *FavoriteController) GetFavorites(ctx *gin.Context) {
	kindeID := ctx.GetString("x-user-id")

	favorites, err := c.FavoriteUsecase.List(ctx.Request.Context(), kindeID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "favorites", favorites, len(favorites))
}

func (c *FavoriteController) GetIsFavorite(ctx *gin.Context) {
	kindeID := ctx.GetString("x-user-id")
	favoriteType := ctx.Param("type")
	spotifyID := ctx.Param("spotifyId")
	if favoriteType == "" || spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMS", "type and spotifyId are required")
		return
	}

	found, err := c.FavoriteUsecase.IsFavorite(ctx.Request.Context(), kindeID, favoriteType, spotifyID)
	if err != nil {
		if errors.Is(err, usecase_stream.ErrInvalidFavoriteType) {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_TYPE", err.Error())
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "isFavorite", found, 1)
}

func (c *FavoriteController) AddFavorite(ctx *gin.Context) {
	kindeID := ctx.GetString("x-user-id")

	var body struct {
		Type      string `json:"type" binding:"required"`
		SpotifyID string `json:"spotifyId" binding:"required"`
		Name      string `json:"name"`
		Image     string `json:"image"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	favorite := &stream_models.UserFavorite{
		KindeID:   kindeID,
		Type:      body.Type,
		SpotifyID: body.SpotifyID,
		Name:      body.Name,
		Image:     body.Image,
	}
	if err := c.FavoriteUsecase.Add(ctx.Request.Context(), favorite); err != nil {
		if errors.Is(err, usecase_stream.ErrInvalidFavoriteType) {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_TYPE", err.Error())
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "favorite", favorite, 1)
}

func (c *FavoriteController) RemoveFavorite(ctx *gin.Context) {
	kindeID := ctx.GetString("x-user-id")
	favoriteType := ctx.Param("type")
	spotifyID := ctx.Param("spotifyId")
	if favoriteType == "" || spotifyID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMS", "type and spotifyId are required")
		return
	}

	err := c.FavoriteUsecase.Remove(ctx.Request.Context(), kindeID, favoriteType, spotifyID)
	if err != nil {
		switch {
		case errors.Is(err, usecase_stream.ErrInvalidFavoriteType):
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_TYPE", err.Error())
		case errors.Is(err, domain.ErrNotFound):
			controller.ErrorResponse(ctx, http.StatusNotFound, "FAVORITE_NOT_FOUND", "favorite not found")
		default:
			controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		}
		return
	}

	controller.SuccessResponse(ctx, "removed", true, 1)
}

// GetDashboard 收藏艺术家按最近一天日增排序
func (c *FavoriteController) GetDashboard(ctx *gin.Context) {
	kindeID := ctx.GetString("x-user-id")

	entries, err := c.FavoriteUsecase.Dashboard(ctx.Request.Context(), kindeID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "dashboard", entries, len(entries))
}

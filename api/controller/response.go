package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse 统一成功响应：{status, count, <key>: data}
func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  count,
		key:      data,
	})
}

// ErrorResponse 统一错误响应：{status, code, message}
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{
		"status":  "error",
		"code":    code,
		"message": message,
	})
}

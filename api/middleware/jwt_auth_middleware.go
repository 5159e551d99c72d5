package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/soundpulse/soundpulse-backend/api/controller"
)

// JwtAuthMiddleware 校验 Bearer 令牌，把 subject（kinde 用户 ID）写入上下文
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			controller.ErrorResponse(ctx, http.StatusUnauthorized, "NOT_AUTHORIZED", "missing bearer token")
			ctx.Abort()
			return
		}

		userID, err := extractSubject(parts[1], secret)
		if err != nil {
			controller.ErrorResponse(ctx, http.StatusUnauthorized, "NOT_AUTHORIZED", err.Error())
			ctx.Abort()
			return
		}

		ctx.Set("x-user-id", userID)
		ctx.Next()
	}
}

func extractSubject(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("token missing subject")
	}
	return subject, nil
}

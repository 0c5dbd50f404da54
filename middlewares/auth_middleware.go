package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"gin-todo/constants"
	"gin-todo/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware Bearerトークンを検証し、ユーザーをコンテキストに設定する
// トークンなし -> 401、無効または期限切れ -> 403、ユーザー不在 -> 401
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrTokenRequired})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrTokenInvalid})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": constants.ErrTokenRejected})
			return
		}

		ctx.Set("user", user)

		ctx.Next()
	}
}

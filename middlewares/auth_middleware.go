package middlewares

import (
	"net/http"

	"github.com/sankalpa008/lost-and-found/constants"
	"github.com/sankalpa008/lost-and-found/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the session cookie to the current user and
// sets it into the request context. A missing, unknown, or expired
// token aborts with 401; it is never an internal error.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(constants.SessionCookieName)
		if err != nil || token == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := authService.GetUserFromSession(token)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set("user", user)

		ctx.Next()
	}
}

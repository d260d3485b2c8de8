package middlewares

import (
	"net/http"

	"github.com/sankalpa008/lost-and-found/constants"

	"github.com/gin-gonic/gin"
)

// RouteGuard is the page-level gate: without a session cookie, any
// page outside the public allowlist redirects to /login; with one,
// /login and /signup redirect to /dashboard. It checks cookie
// presence only; the actual validation happens in AuthMiddleware on
// protected actions.
func RouteGuard() gin.HandlerFunc {
	publicPaths := map[string]bool{}
	for _, path := range constants.PublicPaths {
		publicPaths[path] = true
	}

	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(constants.SessionCookieName)
		hasSession := err == nil && token != ""
		path := ctx.Request.URL.Path

		if !hasSession && !publicPaths[path] {
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		if hasSession && (path == "/login" || path == "/signup") {
			ctx.Redirect(http.StatusFound, "/dashboard")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

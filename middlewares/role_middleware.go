package middlewares

import (
	"net/http"

	"github.com/sankalpa008/lost-and-found/models"

	"github.com/gin-gonic/gin"
)

// RoleBasedAccessControl allows only the given roles through. Must run
// after AuthMiddleware ("user" has to be in the context). A logged-in
// user with the wrong role gets 403, distinct from the 401 of no
// session.
func RoleBasedAccessControl(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// The role comes from the fresh user row loaded by
		// AuthMiddleware, not from anything the client sent.
		hasAccess := false
		for _, allowedRole := range allowedRoles {
			if userModel.Role == allowedRole {
				hasAccess = true
				break
			}
		}

		if !hasAccess {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}

package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sankalpa008/lost-and-found/constants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ok := func(ctx *gin.Context) { ctx.Status(http.StatusOK) }
	pages := r.Group("", RouteGuard())
	pages.GET("/", ok)
	pages.GET("/login", ok)
	pages.GET("/signup", ok)
	pages.GET("/dashboard", ok)
	return r
}

func guardedGet(r *gin.Engine, path string, withCookie bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "some-token"})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouteGuardPublicPathsWithoutSession(t *testing.T) {
	r := guardedRouter()

	for _, path := range constants.PublicPaths {
		w := guardedGet(r, path, false)
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestRouteGuardRedirectsProtectedPathToLogin(t *testing.T) {
	r := guardedRouter()

	w := guardedGet(r, "/dashboard", false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRouteGuardRedirectsAuthedAwayFromLogin(t *testing.T) {
	r := guardedRouter()

	for _, path := range []string{"/login", "/signup"} {
		w := guardedGet(r, path, true)
		assert.Equal(t, http.StatusFound, w.Code, "path %s", path)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"), "path %s", path)
	}
}

func TestRouteGuardAllowsAuthedProtectedPath(t *testing.T) {
	r := guardedRouter()

	w := guardedGet(r, "/dashboard", true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuardAllowsAuthedRoot(t *testing.T) {
	r := guardedRouter()

	w := guardedGet(r, "/", true)
	assert.Equal(t, http.StatusOK, w.Code)
}

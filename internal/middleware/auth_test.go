package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/config"
)

func newAuthRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Auth.APIKey = apiKey

	r := gin.New()
	r.Use(APIKeyAuth(cfg))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestAPIKeyAuth(t *testing.T) {
	t.Run("open when no key configured", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		newAuthRouter("").ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("accepts X-API-Key header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-API-Key", "secret")
		newAuthRouter("secret").ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("accepts bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer secret")
		newAuthRouter("secret").ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects wrong or missing key", func(t *testing.T) {
		for _, setup := range []func(*http.Request){
			func(req *http.Request) {},
			func(req *http.Request) { req.Header.Set("X-API-Key", "wrong") },
			func(req *http.Request) { req.Header.Set("Authorization", "Bearer wrong") },
		} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			setup(req)
			newAuthRouter("secret").ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}
	})
}

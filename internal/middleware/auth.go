package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/config"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/serializer"
)

// APIKeyAuth authenticates the browser extension and dashboard with a shared
// key, accepted either as X-API-Key or a Bearer token. When no key is
// configured the API is open (local single-user deployments).
func APIKeyAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Auth.APIKey == "" {
			c.Next()
			return
		}

		key := c.GetHeader("X-API-Key")
		if key == "" {
			auth := c.GetHeader("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				key = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Auth.APIKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		c.Next()
	}
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/config"
	"github.com/orderdesk/orderdesk/internal/logger"
)

// APIKeyMiddleware authenticates requests with the static API key in the
// configured header. An unset key rejects everything rather than opening
// the API up.
func APIKeyMiddleware(cfg *config.Configuration, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(cfg.Auth.APIKey.Header)
		secret := cfg.Auth.APIKey.Secret

		if key == "" || secret == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			logger.Debugw("rejected request with invalid api key",
				"path", c.Request.URL.Path,
			)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}

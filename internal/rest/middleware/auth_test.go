package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/config"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	cfg.Auth.APIKey.Secret = secret

	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	router := gin.New()
	router.Use(APIKeyMiddleware(cfg, log))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAPIKeyMiddleware(t *testing.T) {
	testCases := []struct {
		name           string
		secret         string
		header         string
		expectedStatus int
	}{
		{
			name:           "valid_key",
			secret:         "test-key",
			header:         "test-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong_key",
			secret:         "test-key",
			header:         "other-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing_key",
			secret:         "test-key",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unset_secret_rejects_everything",
			secret:         "",
			header:         "anything",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupAuthRouter(t, tc.secret)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set("x-api-key", tc.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

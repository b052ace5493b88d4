package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskboard/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Without a Redis address the limiter must still enforce, not fail open.
func TestRateLimitFallsBackWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{RedisAddr: ""}

	r := gin.New()
	r.GET("/test", rateLimit(cfg, 1, time.Minute), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	hit := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, hit())
	require.Equal(t, http.StatusTooManyRequests, hit())
}

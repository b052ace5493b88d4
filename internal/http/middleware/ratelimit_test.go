package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func simpleLimitRouter(maxRequests int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/test", SimpleRateLimit(maxRequests, window), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestSimpleRateLimit(t *testing.T) {
	r := simpleLimitRouter(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hit(r))
	}
	require.Equal(t, http.StatusTooManyRequests, hit(r))
}

func TestSimpleRateLimitWindowReset(t *testing.T) {
	r := simpleLimitRouter(1, 50*time.Millisecond)

	require.Equal(t, http.StatusOK, hit(r))
	require.Equal(t, http.StatusTooManyRequests, hit(r))

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, http.StatusOK, hit(r))
}

// Stacked route groups each get their own window; exhausting one limiter
// must not consume the other's budget.
func TestSimpleRateLimitInstancesIndependent(t *testing.T) {
	outer := simpleLimitRouter(1, time.Minute)
	inner := simpleLimitRouter(1, time.Minute)

	require.Equal(t, http.StatusOK, hit(outer))
	require.Equal(t, http.StatusTooManyRequests, hit(outer))

	require.Equal(t, http.StatusOK, hit(inner))
}

func TestSimpleRateLimitConcurrent(t *testing.T) {
	const limit = 5
	const total = 40
	r := simpleLimitRouter(limit, time.Minute)

	var allowed, blocked atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch hit(r) {
			case http.StatusOK:
				allowed.Add(1)
			case http.StatusTooManyRequests:
				blocked.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(limit), allowed.Load())
	require.Equal(t, int64(total-limit), blocked.Load())
}

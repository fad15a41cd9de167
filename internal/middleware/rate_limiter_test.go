package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 2})

	// First client exhausts its burst.
	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))

	// A second client's bucket is untouched.
	assert.True(t, rl.allow("10.0.0.2"))
}

func TestRateLimitReturns429PerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1}).RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(remoteAddr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, send("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000"))
}

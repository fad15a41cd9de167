package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	requestIDRouter().ServeHTTP(w, req)

	rid := w.Header().Get(HeaderXRequestID)
	require.NotEmpty(t, rid)
	_, err := uuid.Parse(rid)
	assert.NoError(t, err)
}

func TestRequestIDHonorsWellFormedHeader(t *testing.T) {
	supplied := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderXRequestID, supplied)
	requestIDRouter().ServeHTTP(w, req)

	assert.Equal(t, supplied, w.Header().Get(HeaderXRequestID))
}

func TestRequestIDReplacesMalformedHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderXRequestID, "not-a-uuid\r\ninjected")
	requestIDRouter().ServeHTTP(w, req)

	rid := w.Header().Get(HeaderXRequestID)
	require.NotEqual(t, "not-a-uuid\r\ninjected", rid)
	_, err := uuid.Parse(rid)
	assert.NoError(t, err)
}

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"productmgmt/internal/handler"
	"productmgmt/internal/infra"
)

func serveHealth(h gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/health", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	return w
}

func TestHealthMemoryOnly(t *testing.T) {
	w := serveHealth(handler.Health(nil, nil, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"disabled","redis":"disabled","rate_limiter":"memory"}`, w.Body.String())
}

func TestHealthRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	breaker := infra.NewCircuitBreaker(infra.DefaultCBConfig("redis"))

	w := serveHealth(handler.Health(nil, rdb, breaker))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"disabled","redis":"connected","rate_limiter":"redis:closed"}`, w.Body.String())

	mr.Close()
	w = serveHealth(handler.Health(nil, rdb, breaker))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"error"`)
}

package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productmgmt/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func memoryConfig() *config.Config {
	return &config.Config{
		Port:               8000,
		Env:                "test",
		StoreDriver:        config.StoreMemory,
		RateLimitPerMinute: 0,
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutesWithMemoryStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := New(ctx, memoryConfig(), nil, nil)

	w := serve(r, http.MethodPost, "/products/", `{"name":"Widget","description":"d","price":9.99,"quantity":5}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = serve(r, http.MethodGet, "/products/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/categories/", `{"name":"Tools"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"disabled","redis":"disabled","rate_limiter":"memory"}`, w.Body.String())
}

func TestRateLimitApplied(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := memoryConfig()
	cfg.RateLimitPerMinute = 2
	r := New(ctx, cfg, nil, nil)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/products/", "").Code)
	}
	w := serve(r, http.MethodGet, "/products/", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// health is outside the limited group
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", "").Code)
}

func TestSwaggerOnlyOutsideProduction(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := New(ctx, memoryConfig(), nil, nil)
	w := serve(r, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/products/{id}")

	cfg := memoryConfig()
	cfg.Env = "production"
	r = New(ctx, cfg, nil, nil)
	gin.SetMode(gin.TestMode)
	w = serve(r, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

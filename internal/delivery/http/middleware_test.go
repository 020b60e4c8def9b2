package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIsAllowedOrigin(t *testing.T) {
	cases := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{"wildcard allows anything", "https://example.com", []string{"*"}, true},
		{"exact match", "https://app.mealscan.io", []string{"https://app.mealscan.io"}, true},
		{"exact mismatch", "https://evil.com", []string{"https://app.mealscan.io"}, false},
		{"prefix wildcard", "https://staging.mealscan.io", []string{"https://staging.*"}, true},
		{"empty list denies", "https://example.com", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isAllowedOrigin(tc.origin, tc.allowed))
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("preflight short-circuits", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"*"}))
		router.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin gets no CORS headers", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"https://app.mealscan.io"}))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://evil.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(perMinute int) *gin.Engine {
		router := gin.New()
		router.Use(RateLimitMiddleware(perMinute))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	hit := func(router *gin.Engine) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("requests beyond the burst are rejected", func(t *testing.T) {
		router := newRouter(2)
		assert.Equal(t, http.StatusOK, hit(router))
		assert.Equal(t, http.StatusOK, hit(router))
		assert.Equal(t, http.StatusTooManyRequests, hit(router))
	})

	t.Run("zero limit disables limiting", func(t *testing.T) {
		router := newRouter(0)
		for i := 0; i < 50; i++ {
			assert.Equal(t, http.StatusOK, hit(router))
		}
	})
}

func TestIPLimitersEviction(t *testing.T) {
	now := time.Now()
	limiters := newIPLimiters(10)
	limiters.now = func() time.Time { return now }

	limiters.allow("10.0.0.1")
	limiters.allow("10.0.0.2")
	assert.Len(t, limiters.clients, 2)

	t.Run("active clients survive a sweep", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		limiters.allow("10.0.0.1")

		now = now.Add(2 * time.Minute)
		// 10.0.0.2 is now 4m idle, 10.0.0.1 only 2m
		limiters.allow("10.0.0.3")

		assert.Contains(t, limiters.clients, "10.0.0.1")
		assert.NotContains(t, limiters.clients, "10.0.0.2")
	})

	t.Run("idle clients are fully evicted", func(t *testing.T) {
		now = now.Add(10 * time.Minute)
		limiters.allow("10.0.0.4")

		assert.Len(t, limiters.clients, 1)
		assert.Contains(t, limiters.clients, "10.0.0.4")
	})
}

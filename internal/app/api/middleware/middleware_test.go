package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fatflowers/prayerbook/internal/app/service/installation"
	"github.com/fatflowers/prayerbook/internal/app/service/persist"
	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/logctx"
	"github.com/fatflowers/prayerbook/pkg/response"
	"github.com/fatflowers/prayerbook/pkg/tool"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTraceMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = logctx.Value(c.Request.Context(), logctx.TraceIDKey)
		c.Status(http.StatusNoContent)
	})

	w := serve(r, http.MethodGet, "/", map[string]string{"X-Request-ID": "abc"})
	require.Equal(t, "abc", w.Header().Get("X-Request-ID"))
	require.Equal(t, "abc", seen)

	w = serve(r, http.MethodGet, "/", nil)
	require.True(t, tool.IsUUID(w.Header().Get("X-Request-ID")))
	require.Equal(t, w.Header().Get("X-Request-ID"), seen)
}

func TestAccessLog_UsesScopedLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core).Sugar()

	r := gin.New()
	r.Use(TraceMiddleware(), RequestLoggerMiddleware(base), AccessLogMiddleware(base))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/ping", map[string]string{"X-Request-ID": "t-1"})
	entries := logs.FilterMessage("http_access").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "t-1", fields["trace_id"])
	require.Equal(t, "/ping", fields["path"])
	require.EqualValues(t, http.StatusOK, fields["status"])
}

func newRegistry(t *testing.T) *installation.Registry {
	t.Helper()
	l := zap.NewNop().Sugar()
	store := kv.NewMemoryStore()
	w := persist.NewWriter(store, l, nil, persist.Options{Timeout: time.Second})
	t.Cleanup(func() { _ = w.Close(context.Background()) })
	return installation.NewRegistry(store, w, clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)), l, nil)
}

func TestInstallationMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core).Sugar()
	reg := newRegistry(t)

	r := gin.New()
	g := r.Group("/i/:installation_id", InstallationMiddleware(reg, base))
	g.GET("/who", func(c *gin.Context) {
		s := Session(c)
		require.NotNil(t, s)
		logctx.FromCtx(c.Request.Context(), zap.NewNop().Sugar()).Info("inside")
		c.String(http.StatusOK, s.ID)
	})

	w := serve(r, http.MethodGet, "/i/device_1/who", nil)
	require.Equal(t, "device_1", w.Body.String())
	require.Equal(t, "device_1", logs.FilterMessage("inside").All()[0].ContextMap()["installation_id"])

	w = serve(r, http.MethodGet, "/i/bad%20id/who", nil)
	var body response.APIResponse[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, response.APIResponseCodeBadRequest, body.Code)
	require.Equal(t, 1, reg.Len())
}

func TestRateLimiter_PerKey(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Reserve("a")
	require.True(t, ok)
	ok, _ = rl.Reserve("a")
	require.True(t, ok)
	ok, wait := rl.Reserve("a")
	require.False(t, ok)
	require.Equal(t, time.Second, wait)

	ok, _ = rl.Reserve("b")
	require.True(t, ok, "keys are independent")

	now = now.Add(time.Second)
	ok, _ = rl.Reserve("a")
	require.True(t, ok)
}

func TestRateLimiter_SweepsIdleKeys(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Reserve("a")
	now = now.Add(rl.idleTTL + time.Minute)
	rl.Reserve("b")
	require.Len(t, rl.limiters, 1)
	require.Contains(t, rl.limiters, "b")
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		ok, _ := rl.Reserve("a")
		require.True(t, ok)
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	r := gin.New()
	r.POST("/i/:installation_id/generate", rl.Middleware(ByInstallation), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/i/a/generate", nil).Code)
	w := serve(r, http.MethodPost, "/i/a/generate", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotEmpty(t, w.Header().Get("Retry-After"))
	require.Contains(t, w.Body.String(), "42900")
	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/i/b/generate", nil).Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/", map[string]string{
		"Origin":                        "https://app.example.com",
		"Access-Control-Request-Method": "GET",
	})
	require.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/", map[string]string{"Origin": "https://evil.example.com"})
	require.Equal(t, http.StatusForbidden, w.Code)
}

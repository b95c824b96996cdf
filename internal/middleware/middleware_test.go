package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/javajoker/natura-backend/internal/config"
	"github.com/javajoker/natura-backend/internal/i18n"
	"github.com/javajoker/natura-backend/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"lang":       c.GetString("lang"),
			"request_id": c.GetString("request_id"),
		})
	})
	return r
}

func TestPreferredLanguage(t *testing.T) {
	require.NoError(t, i18n.Initialize("es"))

	cases := map[string]string{
		"":                        "es",
		"en":                      "en",
		"en-US,en;q=0.9":          "en",
		"de-DE,de;q=0.9,en;q=0.8": "en",
		"fr, es-MX;q=0.5":         "es",
		"*":                       "es",
		"-,;":                     "es",
	}
	for header, want := range cases {
		assert.Equal(t, want, preferredLanguage(header), header)
	}
}

func TestI18nMiddlewareSetsLang(t *testing.T) {
	require.NoError(t, i18n.Initialize("es"))
	r := newEngine(I18nMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Accept-Language", "en-GB")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.JSONEq(t, `{"lang":"en","request_id":""}`, rec.Body.String())
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := newEngine(RequestID())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, rec.Body.String(), generated)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRateLimiterRejectsAfterBurst(t *testing.T) {
	require.NoError(t, i18n.Initialize("es"))
	rl := NewRateLimiter(rate.Every(time.Hour), 2)
	r := newEngine(rl.Middleware())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"error":"Demasiadas solicitudes, intente de nuevo más tarde"}`, rec.Body.String())
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Second), 1)
	rl.getVisitor("10.0.0.1")

	rl.cleanupVisitors(time.Now())
	assert.Len(t, rl.visitors, 1)

	rl.cleanupVisitors(time.Now().Add(time.Hour))
	assert.Empty(t, rl.visitors)
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(RateLimit(config.RateLimitConfig{Enabled: false}, nil))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiterRunStopsOnClose(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Second), 1)
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		rl.Run(time.Millisecond, stop)
		close(done)
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("eviction loop still running after stop was closed")
	}
}

func TestMetricsRecordsPanickingHandler(t *testing.T) {
	r := gin.New()
	r.Use(gin.RecoveryWithWriter(io.Discard), Metrics())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, scrape.Code)
	assert.Contains(t, scrape.Body.String(), "natura_http_inflight_requests 0")
	assert.Contains(t, scrape.Body.String(), `natura_http_requests_total{method="GET",path="/boom",status="500"} 1`)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS(config.CORSConfig{AllowedOrigins: []string{"https://tienda.example"}, MaxAge: 60}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://tienda.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "https://tienda.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://other.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCORSWildcard(t *testing.T) {
	r := newEngine(CORS(config.CORSConfig{AllowedOrigins: []string{"*"}}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://anything.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

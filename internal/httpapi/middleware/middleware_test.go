package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := log.New()
	l.SetOutput(&buf)
	l.SetFormatter(&log.JSONFormatter{})
	return l, &buf
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	require.Len(t, generated, 36)
	require.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	require.Equal(t, "abc-123", w.Body.String())
}

func TestLogger(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger()
	r := gin.New()
	r.Use(RequestID(), Logger(l))
	r.GET("/v1/hresults/:value", func(c *gin.Context) {
		LoggerFrom(c).Info("handler")
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/hresults/0x1", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var handler, access map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &handler))
	require.NoError(t, json.Unmarshal(lines[1], &access))

	require.Equal(t, "handler", handler["msg"])
	require.Equal(t, "rid-1", handler["request_id"])

	require.Equal(t, "request", access["msg"])
	require.Equal(t, "warning", access["level"])
	require.Equal(t, "/v1/hresults/:value", access["path"])
	require.Equal(t, float64(http.StatusNotFound), access["status"])
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger()
	r := gin.New()
	r.Use(RequestID(), Logger(l), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "rid-2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"request_id":"rid-2","code":"internal_error","message":"internal server error"}`, w.Body.String())
	require.Contains(t, buf.String(), "panic recovered")
}

func TestLoggerFromWithoutLogger(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	require.NotNil(t, LoggerFrom(c))
}

func TestRateLimiter(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.Use(RequestID(), rl.Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.9:12345"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			require.Equal(t, "1", w.Header().Get("Retry-After"))
			require.Contains(t, w.Body.String(), `"code":"rate_limited"`)
		}
	}
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.1:12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterBurstCoercionAndEviction(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 0)
	require.Equal(t, 1, rl.burst)

	lim := rl.getVisitor("k1")
	require.Same(t, lim, rl.getVisitor("k1"))

	rl.ttl = time.Nanosecond
	rl.mu.Lock()
	rl.visitors["old"] = &visitor{limiter: rate.NewLimiter(1, 1), lastSeen: time.Now().Add(-time.Hour)}
	rl.cleanupN = 4999
	rl.mu.Unlock()

	_ = rl.getVisitor("new")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	require.NotContains(t, rl.visitors, "old")
	require.Contains(t, rl.visitors, "new")
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(Metrics())
	r.GET("/v1/facilities/:code", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/facilities/7", nil))
	require.Equal(t, float64(1), testutil.ToFloat64(httpReqs.WithLabelValues(http.MethodGet, "/v1/facilities/:code", "200")))

	ObserveLookup("metrics-test", true)
	ObserveLookup("metrics-test", false)
	ObserveLookup("metrics-test", false)
	require.Equal(t, float64(1), testutil.ToFloat64(lookups.WithLabelValues("metrics-test", "hit")))
	require.Equal(t, float64(2), testutil.ToFloat64(lookups.WithLabelValues("metrics-test", "miss")))
}

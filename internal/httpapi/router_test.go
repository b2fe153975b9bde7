package httpapi

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsoda/go-hresult/internal/config"
	"github.com/cloudsoda/go-hresult/internal/httpapi/handlers"
	"github.com/cloudsoda/go-hresult/internal/httpapi/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func testServerConfig() config.ServerConfig {
	cfg := config.Default().Server
	cfg.Addr = "127.0.0.1:0"
	cfg.RateRPS = 1000
	cfg.RateBurst = 1000
	return cfg
}

func TestRouter(t *testing.T) {
	t.Parallel()

	r := NewRouter(testServerConfig(), newTestLogger())

	tests := []struct {
		scenario   string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{scenario: "health", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{scenario: "decode", method: http.MethodGet, path: "/v1/hresults/0x80004005", wantStatus: http.StatusOK},
		{scenario: "search", method: http.MethodGet, path: "/v1/hresults?q=access", wantStatus: http.StatusOK},
		{scenario: "facility", method: http.MethodGet, path: "/v1/facilities/7", wantStatus: http.StatusOK},
		{scenario: "unknown route", method: http.MethodGet, path: "/v2/nothing", wantStatus: http.StatusNotFound, wantCode: handlers.ErrCodeNotFound},
		{scenario: "wrong method", method: http.MethodPost, path: "/v1/hresults/0", wantStatus: http.StatusMethodNotAllowed, wantCode: handlers.ErrCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

			if tt.wantCode != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)
			}
		})
	}
}

func TestRouterGzip(t *testing.T) {
	t.Parallel()

	r := NewRouter(testServerConfig(), newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/hresults/0x8007000E", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), "E_OUTOFMEMORY")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Contains(t, w.Body.String(), "hresult_lookups_total")
}

func TestRouterRateLimit(t *testing.T) {
	t.Parallel()

	cfg := testServerConfig()
	cfg.RateRPS = 0.001
	cfg.RateBurst = 1
	r := NewRouter(cfg, newTestLogger())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveListener(ctx, ln, testServerConfig(), newTestLogger()) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeListenError(t *testing.T) {
	t.Parallel()

	cfg := testServerConfig()
	cfg.Addr = "256.0.0.1:bad"
	err := Serve(context.Background(), cfg, newTestLogger())
	require.Error(t, err)
}

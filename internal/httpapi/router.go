// Package httpapi serves the read-only HRESULT lookup API.
package httpapi

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/cloudsoda/go-hresult/internal/config"
	"github.com/cloudsoda/go-hresult/internal/httpapi/handlers"
	"github.com/cloudsoda/go-hresult/internal/httpapi/middleware"
)

// NewRouter builds the gin engine. Middleware order:
//  1. RequestID
//  2. access log
//  3. panic recovery
//  4. Prometheus metrics
//  5. per-IP rate limit
//  6. gzip
func NewRouter(cfg config.ServerConfig, l *log.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(l))
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst).Handler())
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/hresults", handlers.ListHResults)
		v1.GET("/hresults/:value", handlers.DecodeHResult)
		v1.GET("/facilities/:code", handlers.GetFacility)
	}
	return r
}

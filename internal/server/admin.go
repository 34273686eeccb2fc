package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/croylabs/dhcpwire/internal/observability"
)

// AdminRouter exposes the scrape surface for the daemon: a health probe and
// the prometheus registry.
func AdminRouter(node string, logger zerolog.Logger) *gin.Engine {
	observability.RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)

	startedAt := time.Now()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logger))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"node":    node,
			"uptime":  time.Since(startedAt).String(),
			"service": "dhcpwired",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

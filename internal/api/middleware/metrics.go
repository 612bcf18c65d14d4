package middleware

import (
	"strconv"
	"time"

	"holonet-go/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 记录请求数和耗时，path 使用路由模板避免标签爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		code := strconv.Itoa(c.Writer.Status())
		metrics.TotalRequests.WithLabelValues(path, code, c.Request.Method).Inc()
		metrics.HttpDuration.WithLabelValues(path, code, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"zoo_api/pkg/metrics"
)

// Metrics 以路由樣板（例如 /api/zoos/:id）為標籤記錄請求次數與耗時
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/symbiosis-backend/internal/observability"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
)

// Metrics instruments HTTP request counts/latency when metrics are enabled.
// Errors a handler attached with c.Error are counted by code once they reach
// storage (409 and up).
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method
		m.ObserveAPI(method, route, status, time.Since(start))

		if last := c.Errors.Last(); last != nil {
			if ae, ok := apierr.As(last.Err); ok && ae.Status >= http.StatusConflict {
				m.IncStorageError(ae.Code)
			}
		}
	}
}

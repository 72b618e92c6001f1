package interceptor

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"sanmei/app/common"
	ml "sanmei/middleware"
)

// LoggerMiddleware 记录每个请求，并给请求分配 request id
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(common.HEADER_REQUEST_ID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(common.CTX_REQUEST_ID, reqID)
		c.Header(common.HEADER_REQUEST_ID, reqID)

		c.Next()

		entry := ml.Log.WithFields(logrus.Fields{
			"request_id": reqID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"query":      c.Request.URL.RawQuery,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		entry.Info("request")
	}
}

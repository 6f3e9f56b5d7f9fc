package middleware

import (
	"fmt"
	"net/http"
	"time"

	"gymmaster/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorLogger logs failed requests and recovers from panics.
func ErrorLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("request panic",
					append(requestFields(c, start), zap.String("panic", fmt.Sprintf("%v", recovered)), zap.Stack("stack"))...)
				response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				return
			}

			for _, e := range c.Errors {
				log.Warn("request error", append(requestFields(c, start), zap.Error(e.Err))...)
			}
			if c.Writer.Status() >= http.StatusInternalServerError {
				log.Error("request failed", requestFields(c, start)...)
			}
		}()

		c.Next()
	}
}

func requestFields(c *gin.Context, start time.Time) []zap.Field {
	return []zap.Field{
		zap.Int("status", c.Writer.Status()),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.String("client_ip", c.ClientIP()),
		zap.String("staff", GetStaff(c)),
		zap.String("request_id", GetRequestID(c)),
		zap.Duration("latency", time.Since(start)),
	}
}

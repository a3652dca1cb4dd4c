package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID tags every request with an id, reusing one supplied by a proxy.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger is gin's request logger with the request id in every line.
func Logger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		id, _ := p.Keys[RequestIDKey].(string)
		return fmt.Sprintf("[blogly] %s | %3d | %13v | %15s | %-7s %#v | %s\n",
			p.TimeStamp.Format(time.RFC3339),
			p.StatusCode,
			p.Latency,
			p.ClientIP,
			p.Method,
			p.Path,
			id,
		)
	})
}

// NoStore stops browsers from caching pages that show mutable rows and flash messages.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}

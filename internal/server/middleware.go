package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// requestID reuses the caller's X-Request-ID or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// requestLogger logs every request through slog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			slog.Error("request failed", attrs...)
		case c.Writer.Status() >= http.StatusBadRequest:
			slog.Warn("request rejected", attrs...)
		default:
			slog.Debug("request handled", attrs...)
		}
	}
}

// countRequests feeds the request counters
func countRequests(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.ActiveRequests.Add(1)
		defer m.ActiveRequests.Add(-1)

		c.Next()

		m.IncRequests()
		if c.Writer.Status() >= http.StatusInternalServerError {
			m.IncServerErrors()
		}
	}
}

// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "request_id"
	loggerKey    = "logger"
)

// LoggingMiddleware handles request logging.
type LoggingMiddleware struct {
	logger zerolog.Logger
}

// NewLoggingMiddleware creates a LoggingMiddleware on the global logger.
func NewLoggingMiddleware() *LoggingMiddleware {
	return NewLoggingMiddlewareWithLogger(log.Logger)
}

// NewLoggingMiddlewareWithLogger creates a LoggingMiddleware with a custom logger.
func NewLoggingMiddlewareWithLogger(logger zerolog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: logger,
	}
}

// RequestLogger assigns the request ID and stores a logger scoped to the
// addressed database and collection.
func (m *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		ctx := m.logger.With().Str("request_id", requestID)
		if database := c.Param("database"); database != "" {
			ctx = ctx.Str("database", database)
		}
		if collection := c.Param("collection"); collection != "" {
			ctx = ctx.Str("collection", collection)
		}
		c.Set(loggerKey, ctx.Logger())

		c.Next()
	}
}

// Logger logs one line per completed request. Client errors log at warn,
// server errors at error.
func (m *LoggingMiddleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		logger := m.logger
		if l, ok := c.Get(loggerKey); ok {
			logger = l.(zerolog.Logger)
		}

		logger.WithLevel(statusLevel(status)).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("body_size", c.Writer.Size()).
			Msg("request completed")
	}
}

func statusLevel(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// GetRequestLogger retrieves the request-scoped logger, falling back to the
// global logger outside a request chain.
func GetRequestLogger(c *gin.Context) zerolog.Logger {
	if logger, ok := c.Get(loggerKey); ok {
		return logger.(zerolog.Logger)
	}
	return log.Logger
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

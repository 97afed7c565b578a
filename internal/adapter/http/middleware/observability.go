package middleware

import (
	"net/http"
	"time"

	"fmrental_prestige/internal/infrastructure/observability"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// route returns the matched route pattern, or "unmatched" so unknown paths do
// not create new label values.
func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observability.ObserveHTTP(route(c), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

// Logger emits one structured http_request event per request.
func Logger(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := l.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("route", route(c)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("remote", c.ClientIP()).
			Str("ua", c.Request.UserAgent()).
			Msg("http_request")
	}
}

// Recovery turns panics into a 500 with the standard error body.
func Recovery(l zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		l.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "An internal error occurred",
		})
	})
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultAllowMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

// CORS answers preflights and allows the configured origins with
// credentials. An empty list (or "*") allows any origin; the request Origin is
// echoed back since browsers reject "*" on credentialed requests. Requested
// methods and headers are reflected on preflights.
func CORS(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	allowAll := len(origins) == 0
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "*" {
			allowAll = true
		}
		if o != "" {
			allowed[o] = true
		}
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		h.Add("Vary", "Origin")
		if !allowAll && !allowed[origin] {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			c.Next()
			return
		}
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")

		reqMethod := c.GetHeader("Access-Control-Request-Method")
		if c.Request.Method != http.MethodOptions || reqMethod == "" {
			c.Next()
			return
		}

		// Preflight.
		h.Set("Access-Control-Allow-Methods", defaultAllowMethods)
		if !strings.Contains(defaultAllowMethods, strings.ToUpper(reqMethod)) {
			h.Set("Access-Control-Allow-Methods", defaultAllowMethods+", "+strings.ToUpper(reqMethod))
		}
		if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
			h.Set("Access-Control-Allow-Headers", reqHeaders)
		}
		h.Set("Access-Control-Max-Age", "600")
		c.AbortWithStatus(http.StatusNoContent)
	}
}

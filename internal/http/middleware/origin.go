package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// SameOrigin rejects state-changing requests whose Origin header names a
// different host than the one serving the request, unless that origin is
// listed in allowed. Requests without an Origin header pass.
func SameOrigin(allowed []string) gin.HandlerFunc {
	trusted := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		trusted[strings.TrimRight(strings.ToLower(o), "/")] = struct{}{}
	}
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			c.Next()
			return
		}
		if _, ok := trusted[strings.ToLower(origin)]; ok {
			c.Next()
			return
		}
		if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, c.Request.Host) {
			c.Next()
			return
		}
		c.HTML(http.StatusForbidden, "error.html", gin.H{
			"status":     http.StatusForbidden,
			"message":    "Cross-site form submissions are not allowed.",
			"request_id": GetRequestID(c),
		})
		c.Abort()
	}
}

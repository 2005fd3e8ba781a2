package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// LoginPath is where anonymous users are sent by RequireLogin.
const LoginPath = "/login/"

// RequireLogin redirects anonymous requests to the login page, remembering
// the original path in ?next=.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			redirectToLogin(c)
			return
		}
		c.Next()
	}
}

// RequireStaff only lets staff users through. Anonymous users go to the
// login page; signed-in non-staff users get 403 before any handler runs.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := CurrentUser(c)
		if !ok {
			redirectToLogin(c)
			return
		}
		if !v.Staff {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"user":       v,
				"status":     http.StatusForbidden,
				"message":    "You do not have permission to access this page.",
				"request_id": GetRequestID(c),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	next := c.Request.URL.Path
	if q := c.Request.URL.RawQuery; q != "" {
		next += "?" + q
	}
	c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(next))
	c.Abort()
}

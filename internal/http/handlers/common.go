package handlers

import (
	"net/http"
	"strconv"

	"travelbook/internal/domain"
	"travelbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// render adds the signed-in user, pending messages and request id to data
// before executing the named page.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if v, ok := middleware.CurrentUser(c); ok {
		data["user"] = v
	}
	data["messages"] = middleware.TakeMessages(c)
	data["request_id"] = middleware.GetRequestID(c)
	c.HTML(status, name, data)
}

// redirect ends a successful form post with 303 See Other, carrying any
// queued messages to the next page.
func redirect(c *gin.Context, location string) {
	middleware.KeepMessages(c)
	c.Redirect(http.StatusSeeOther, location)
}

func success(c *gin.Context, text string) {
	middleware.AddMessage(c, middleware.LevelSuccess, text)
}

// addErrors queues the user-facing lines of a validation or conflict error.
func addErrors(c *gin.Context, err error) {
	for _, m := range domain.Messages(err) {
		middleware.AddMessage(c, middleware.LevelError, m)
	}
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func viewer(c *gin.Context) domain.Viewer {
	v, _ := middleware.CurrentUser(c)
	return v
}

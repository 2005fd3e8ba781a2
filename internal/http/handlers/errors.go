package handlers

import (
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/http/middleware"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	render(c, status, "error.html", gin.H{
		"title":   http.StatusText(status),
		"status":  status,
		"message": message,
	})
}

// RespondDomainError maps domain errors to an error page.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "The requested page was not found.")
	case domain.IsValidation(err), domain.IsConflict(err):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error",
			"path", c.Request.URL.Path, "error", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}
}

func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "The requested page was not found.")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	render(c, http.StatusOK, "home.html", nil)
}

func AdminDashboard(c *gin.Context) {
	render(c, http.StatusOK, "admin_dashboard.html", gin.H{"title": "Admin"})
}

package handlers

import (
	"net/http"

	intconfig "travelbook/internal/config"
	"travelbook/internal/repositories"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.PingDB(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database tidak tersedia: " + err.Error()})
		return
	}
	n, err := repositories.UserRepo{DB: intconfig.DB}.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal query ke database: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "koneksi database OK", "users_in_db": n})
}

package handlers

import (
	"net/http"

	"jeevanrakshak/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheckHandler handles GET /health with the latest monitor snapshot.
func HealthCheckHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Redis || !status.Firebase {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "services": status})
}

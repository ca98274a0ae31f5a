package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthcheck", c.Healthcheck)
	router.GET("/healthcheck/stats", c.SystemStats)
}

// Healthcheck
// @Summary Service availability check
// @Description Verify database and cache connectivity
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthcheck [get]
func (c *HealthcheckController) Healthcheck(ctx *gin.Context) {
	if err := c.healthcheckService.IsAvailable(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SystemStats
// @Summary Host resource usage
// @Description Report memory and disk usage of the host
// @Tags system
// @Produce json
// @Success 200 {object} SystemStats
// @Failure 500 {object} map[string]string
// @Router /healthcheck/stats [get]
func (c *HealthcheckController) SystemStats(ctx *gin.Context) {
	stats, err := c.healthcheckService.GetSystemStats()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect system stats"})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

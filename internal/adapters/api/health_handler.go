package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathermap.app/internal/ports"
)

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.health.CheckAll(c.Request.Context())

	for _, status := range components {
		if status.Status == "unhealthy" {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Components: components})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Components: components})
}

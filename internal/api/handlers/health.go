// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docstore-service/internal/api/dto"
)

// Pinger reports whether a backing component is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	docDB Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(docDB Pinger) *HealthHandler {
	return &HealthHandler{
		docDB: docDB,
	}
}

// Health handles the /health endpoint.
// @Summary Health check
// @Description Returns the overall health status and component statuses
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service healthy"
// @Failure 503 {object} dto.HealthResponse "Service unhealthy"
// @Router /api/v1/docstore-service/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	status := "healthy"
	statusCode := http.StatusOK

	if err := h.docDB.Ping(c.Request.Context()); err != nil {
		components["docdb"] = "unhealthy"
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else {
		components["docdb"] = "healthy"
	}

	c.JSON(statusCode, dto.HealthResponse{
		Status:     status,
		Components: components,
	})
}

// Ready handles the /ready endpoint.
// @Summary Readiness check
// @Description Returns 200 if the service is ready to accept traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service ready"
// @Failure 503 {object} map[string]string "Service not ready"
// @Router /api/v1/docstore-service/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.docDB.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "docdb unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// Live handles the /live endpoint.
// @Summary Liveness check
// @Description Returns 200 if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service alive"
// @Router /api/v1/docstore-service/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

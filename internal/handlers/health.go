package handlers

import (
	"net/http"

	"github.com/agecare/companion-api/internal/services"
	"github.com/gin-gonic/gin"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status    string `json:"status"`
	AgentName string `json:"agent_name"`
	Ready     bool   `json:"ready"`
}

// HealthCheck godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is alive"
// @Router /healthz [get]
func (a *API) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		AgentName: services.AgentName,
		Ready:     true,
	})
}

package handlers

import (
	"net/http"

	"github.com/agecare/companion-api/internal/models"
	"github.com/agecare/companion-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
)

// Advice godoc
// @Summary Answer a user message with elder-care advice
// @Description Routes the most recent user message through the emergency pre-filter and the rule engine, then delegates to the online model. Always returns a well-formed envelope; delegation failures degrade to a safe reply.
// @Tags advice
// @Accept json
// @Produce json
// @Param request body models.AgentRequest true "Conversation messages"
// @Security ApiKeyAuth
// @Success 200 {object} models.AgentResponse "Agent reply envelope"
// @Router /advice [post]
func (a *API) Advice(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Advice")
	defer span.End()

	var req models.AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.AgentResponse{
			AgentName:    services.AgentName,
			Status:       models.AgentStatusError,
			ErrorMessage: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, a.advice.Reply(ctx, req))
}

// RuleEngine godoc
// @Summary Answer using only the deterministic rule engine
// @Description Runs the rule engine without falling back to the online model. Reports when no rule matched instead of delegating.
// @Tags advice
// @Accept json
// @Produce json
// @Param request body models.AgentRequest true "Conversation messages"
// @Security ApiKeyAuth
// @Success 200 {object} models.AgentResponse "Agent reply envelope"
// @Router /advice/rules [post]
func (a *API) RuleEngine(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "RuleEngine")
	defer span.End()

	var req models.AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.AgentResponse{
			AgentName:    services.AgentName,
			Status:       models.AgentStatusError,
			ErrorMessage: err.Error(),
		})
		return
	}

	message, matched := a.advice.RuleReply(req.LastUserMessage())
	if !matched {
		message = "No rule matched in the rule engine. In the full pipeline this is where the model-backed core takes over."
	}

	c.JSON(http.StatusOK, models.AgentResponse{
		AgentName: services.AgentName,
		Status:    models.AgentStatusSuccess,
		Data:      map[string]interface{}{"message": message},
	})
}

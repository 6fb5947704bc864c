package handlers

import (
	"net/http"

	"github.com/agecare/companion-api/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// SetCheckInPrefs godoc
// @Summary Register caregiver escalation preferences
// @Description Upserts the caregiver contact and escalation threshold for a user. Re-registration replaces the previous preferences wholesale.
// @Tags checkins
// @Accept json
// @Produce json
// @Param prefs body models.CheckInPrefsRequest true "Caregiver preferences"
// @Security ApiKeyAuth
// @Success 200 {object} OKResponse "Preferences stored"
// @Failure 400 {object} ErrorResponse "Malformed payload or non-positive threshold"
// @Router /checkins/prefs [post]
func (a *API) SetCheckInPrefs(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SetCheckInPrefs")
	defer span.End()

	var req models.CheckInPrefsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	span.SetAttributes(
		attribute.String("user_id", req.UserID),
		attribute.String("operation", "set_checkin_prefs"),
	)

	if err := a.checkin.SetPrefs(ctx, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// SendCheckInPrompt godoc
// @Summary Record that a check-in prompt was issued
// @Description Stamps the user's state with a new prompt time, creating the state if it does not exist yet.
// @Tags checkins
// @Produce json
// @Param user_id path string true "User"
// @Security ApiKeyAuth
// @Success 200 {object} OKResponse "Prompt recorded"
// @Failure 400 {object} ErrorResponse "Empty user_id"
// @Router /checkins/{user_id}/prompt [post]
func (a *API) SendCheckInPrompt(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SendCheckInPrompt")
	defer span.End()

	userID := c.Param("user_id")
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("operation", "send_checkin_prompt"),
	)

	if err := a.checkin.SendPrompt(ctx, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// RecordCheckInResponse godoc
// @Summary Record a check-in response
// @Description Stamps the user's state with a new response time, creating the state if it does not exist yet.
// @Tags checkins
// @Produce json
// @Param user_id path string true "User"
// @Security ApiKeyAuth
// @Success 200 {object} OKResponse "Response recorded"
// @Failure 400 {object} ErrorResponse "Empty user_id"
// @Router /checkins/{user_id}/response [post]
func (a *API) RecordCheckInResponse(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "RecordCheckInResponse")
	defer span.End()

	userID := c.Param("user_id")
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("operation", "record_checkin_response"),
	)

	if err := a.checkin.RecordResponse(ctx, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// GetCheckInStatus godoc
// @Summary Evaluate the escalation condition for a user
// @Description Re-derives the escalation condition as of now. A qualifying evaluation records an escalation as a side effect; repeated qualifying calls record again.
// @Tags checkins
// @Produce json
// @Param user_id path string true "User"
// @Security ApiKeyAuth
// @Success 200 {object} models.CheckInStatus "Current check-in status"
// @Failure 400 {object} ErrorResponse "Empty user_id"
// @Router /checkins/{user_id}/status [get]
func (a *API) GetCheckInStatus(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetCheckInStatus")
	defer span.End()

	userID := c.Param("user_id")
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("operation", "evaluate_escalation"),
	)

	status, err := a.checkin.EvaluateEscalation(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

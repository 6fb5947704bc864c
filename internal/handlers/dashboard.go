package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/agecare/companion-api/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// DashboardCheckIn summarizes an elder's latest check-in activity
type DashboardCheckIn struct {
	LastPrompt       *time.Time `json:"last_prompt"`
	LastResponse     *time.Time `json:"last_response"`
	EscalationNeeded bool       `json:"escalation_needed"`
}

// DashboardElder is one elder's slice of the caregiver dashboard
type DashboardElder struct {
	UserID        string            `json:"user_id"`
	LatestCheckIn DashboardCheckIn  `json:"latest_checkin"`
	Reminders     []models.Reminder `json:"reminders"`
}

// DashboardResponse is the caregiver dashboard payload
type DashboardResponse struct {
	CaregiverID string           `json:"caregiver_id"`
	Elders      []DashboardElder `json:"elders"`
	Escalations []string         `json:"escalations"`
}

// CaregiverDashboard godoc
// @Summary Caregiver dashboard
// @Description Aggregates an elder's latest check-in state, reminders, and the full escalation history for a caregiver. The escalation flag here reflects recorded history, not a fresh evaluation.
// @Tags caregiver
// @Produce json
// @Param caregiver_id query string false "Caregiver (default caregiver-1)"
// @Param user_id query string false "Elder (default elder-1)"
// @Security ApiKeyAuth
// @Success 200 {object} DashboardResponse "Dashboard"
// @Router /caregiver/dashboard [get]
func (a *API) CaregiverDashboard(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CaregiverDashboard")
	defer span.End()

	caregiverID := c.DefaultQuery("caregiver_id", "caregiver-1")
	elderID := c.DefaultQuery("user_id", "elder-1")
	span.SetAttributes(
		attribute.String("caregiver_id", caregiverID),
		attribute.String("user_id", elderID),
	)

	escalations := a.checkin.Escalations()
	escalated := false
	for _, e := range escalations {
		if strings.Contains(e, elderID) {
			escalated = true
			break
		}
	}

	checkIn := DashboardCheckIn{EscalationNeeded: escalated}
	if st, ok := a.checkin.State(elderID); ok {
		checkIn.LastPrompt = st.LastPrompt
		checkIn.LastResponse = st.LastResponse
	}

	reminders := a.reminders.ListForUser(ctx, elderID)
	if reminders == nil {
		reminders = []models.Reminder{}
	}

	c.JSON(http.StatusOK, DashboardResponse{
		CaregiverID: caregiverID,
		Elders: []DashboardElder{{
			UserID:        elderID,
			LatestCheckIn: checkIn,
			Reminders:     reminders,
		}},
		Escalations: escalations,
	})
}

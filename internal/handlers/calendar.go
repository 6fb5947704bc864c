package handlers

import (
	"net/http"

	"github.com/agecare/companion-api/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// CreateCalendarEvent godoc
// @Summary Create a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param event body models.CalendarEventCreateRequest true "Event to create"
// @Security ApiKeyAuth
// @Success 201 {object} models.CalendarEvent "Created event"
// @Failure 400 {object} ErrorResponse "Malformed or invalid payload"
// @Router /calendar/events [post]
func (a *API) CreateCalendarEvent(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateCalendarEvent")
	defer span.End()

	var req models.CalendarEventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	span.SetAttributes(attribute.String("user_id", req.UserID))

	ev, err := a.calendar.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ev)
}

// ListCalendarEvents godoc
// @Summary List a user's calendar events
// @Tags calendar
// @Produce json
// @Param user_id path string true "User"
// @Security ApiKeyAuth
// @Success 200 {array} models.CalendarEvent "Events ordered by ID"
// @Router /calendar/events/{user_id} [get]
func (a *API) ListCalendarEvents(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListCalendarEvents")
	defer span.End()

	userID := c.Param("user_id")
	span.SetAttributes(attribute.String("user_id", userID))

	events := a.calendar.ListForUser(ctx, userID)
	if events == nil {
		events = []models.CalendarEvent{}
	}
	c.JSON(http.StatusOK, events)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/agecare/companion-api/internal/config"
	"github.com/agecare/companion-api/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// CreateReminder godoc
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminder body models.ReminderCreateRequest true "Reminder to create"
// @Security ApiKeyAuth
// @Success 201 {object} models.Reminder "Created reminder"
// @Failure 400 {object} ErrorResponse "Malformed or invalid payload"
// @Router /reminders [post]
func (a *API) CreateReminder(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateReminder")
	defer span.End()

	var req models.ReminderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	span.SetAttributes(attribute.String("user_id", req.UserID))

	rem, err := a.reminders.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rem)
}

// ListReminders godoc
// @Summary List a user's reminders
// @Tags reminders
// @Produce json
// @Param user_id path string true "User"
// @Security ApiKeyAuth
// @Success 200 {array} models.Reminder "Reminders ordered by ID"
// @Router /reminders/{user_id} [get]
func (a *API) ListReminders(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListReminders")
	defer span.End()

	userID := c.Param("user_id")
	span.SetAttributes(attribute.String("user_id", userID))

	reminders := a.reminders.ListForUser(ctx, userID)
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	c.JSON(http.StatusOK, reminders)
}

// ConfirmReminder godoc
// @Summary Confirm a reminder
// @Description Marks the reminder as done. Unknown IDs are ignored.
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path int true "Reminder ID"
// @Param body body models.ReminderActionRequest true "Acting party"
// @Security ApiKeyAuth
// @Success 200 {object} OKResponse "Acknowledged"
// @Failure 400 {object} ErrorResponse "Malformed ID or payload"
// @Router /reminders/{id}/confirm [post]
func (a *API) ConfirmReminder(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ConfirmReminder")
	defer span.End()

	id, req, ok := a.bindReminderAction(c)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("reminder_id", id))

	a.reminders.Confirm(ctx, id, req.Actor)
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// SnoozeReminder godoc
// @Summary Snooze a reminder
// @Description Pushes the reminder's due time forward by the given minutes (default from configuration). Unknown IDs are ignored.
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path int true "Reminder ID"
// @Param body body models.ReminderActionRequest true "Acting party and minutes"
// @Security ApiKeyAuth
// @Success 200 {object} OKResponse "Acknowledged"
// @Failure 400 {object} ErrorResponse "Malformed ID, payload, or non-positive minutes"
// @Router /reminders/{id}/snooze [post]
func (a *API) SnoozeReminder(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SnoozeReminder")
	defer span.End()

	id, req, ok := a.bindReminderAction(c)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("reminder_id", id))

	minutes := int(config.AppConfig.DefaultSnooze.Minutes())
	if req.Minutes != nil {
		minutes = *req.Minutes
	}

	if err := a.reminders.Snooze(ctx, id, minutes, req.Actor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// DeleteReminder godoc
// @Summary Delete a reminder
// @Description Removes the reminder. Unknown IDs are ignored.
// @Tags reminders
// @Produce json
// @Param id path int true "Reminder ID"
// @Param actor query string true "Acting party"
// @Security ApiKeyAuth
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Malformed ID"
// @Router /reminders/{id} [delete]
func (a *API) DeleteReminder(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "DeleteReminder")
	defer span.End()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid reminder id"})
		return
	}
	span.SetAttributes(attribute.Int("reminder_id", id))

	a.reminders.Delete(ctx, id, c.Query("actor"))
	c.Status(http.StatusNoContent)
}

// bindReminderAction parses the reminder ID path param and action body
func (a *API) bindReminderAction(c *gin.Context) (int, models.ReminderActionRequest, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid reminder id"})
		return 0, models.ReminderActionRequest{}, false
	}

	var req models.ReminderActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return 0, models.ReminderActionRequest{}, false
	}
	return id, req, true
}

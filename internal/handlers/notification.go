package handlers

import (
	"net/http"

	"github.com/agecare/companion-api/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// NotificationResponse acknowledges a recorded notification
type NotificationResponse struct {
	OK        bool `json:"ok"`
	SentCount int  `json:"sent_count"`
}

// SendNotification godoc
// @Summary Record a notification send
// @Description Hands a notification to the (prototype) delivery layer, which records it and reports the running sent count.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body models.NotificationRequest true "Notification to send"
// @Security ApiKeyAuth
// @Success 200 {object} NotificationResponse "Recorded"
// @Failure 400 {object} ErrorResponse "Malformed or invalid payload"
// @Router /notifications [post]
func (a *API) SendNotification(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SendNotification")
	defer span.End()

	var req models.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	span.SetAttributes(attribute.String("channel", req.Channel))

	count, err := a.notifications.Send(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NotificationResponse{OK: true, SentCount: count})
}

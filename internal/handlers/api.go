package handlers

import (
	"errors"
	"net/http"

	"github.com/agecare/companion-api/internal/audit"
	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/models"
	"github.com/agecare/companion-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error payload returned by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse is the minimal acknowledgement payload
type OKResponse struct {
	OK bool `json:"ok"`
}

// API carries the stores the handlers operate on. Stores are constructed
// once at process start and injected here; there are no package-level
// store singletons.
type API struct {
	consent       *services.ConsentService
	checkin       *services.CheckInService
	reminders     *services.ReminderService
	calendar      *services.CalendarService
	notifications *services.NotificationService
	advice        *services.AdviceService
	auditLog      *audit.Logger
	logger        *logging.SafeLogger
}

// NewAPI creates the handler set around the given stores
func NewAPI(
	consent *services.ConsentService,
	checkin *services.CheckInService,
	reminders *services.ReminderService,
	calendar *services.CalendarService,
	notifications *services.NotificationService,
	advice *services.AdviceService,
	auditLog *audit.Logger,
	logger *logging.SafeLogger,
) *API {
	return &API{
		consent:       consent,
		checkin:       checkin,
		reminders:     reminders,
		calendar:      calendar,
		notifications: notifications,
		advice:        advice,
		auditLog:      auditLog,
		logger:        logger,
	}
}

// respondError maps store errors to protocol status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrProfileExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

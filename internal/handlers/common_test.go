package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agecare/companion-api/internal/audit"
	"github.com/agecare/companion-api/internal/config"
	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testClock is a settable time source for deterministic handler tests
type testClock struct {
	now time.Time
}

func (f *testClock) Now() time.Time {
	return f.now
}

func (f *testClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

type testEnv struct {
	router   *gin.Engine
	auditLog *audit.Logger
	clock    *testClock
}

func setupAPITest(t *testing.T) *testEnv {
	t.Helper()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{
			DefaultSnooze: 10 * time.Minute,
			AdviceTimeout: time.Second,
		}
	}

	clock := &testClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	logger := logging.NewSafeLogger(zap.NewNop())
	auditLog := audit.NewLogger(logger, clock.Now)

	consent := services.NewConsentService(logger, auditLog, clock.Now)
	checkin := services.NewCheckInService(logger, auditLog, clock.Now)
	reminders := services.NewReminderService(logger, auditLog, clock.Now)
	calendar := services.NewCalendarService(logger, auditLog)
	notifications := services.NewNotificationService(logger, auditLog)
	advice := services.NewAdviceService(services.AdviceConfig{
		Model:   "test-model",
		Timeout: time.Second,
	}, logger)

	api := NewAPI(consent, checkin, reminders, calendar, notifications, advice, auditLog, logger)

	router := gin.New()
	router.GET("/healthz", api.HealthCheck)

	v1 := router.Group("/v1")
	{
		v1.POST("/advice", api.Advice)
		v1.POST("/advice/rules", api.RuleEngine)

		v1.POST("/profiles", api.CreateProfile)
		v1.POST("/consents", api.GrantConsent)
		v1.GET("/profiles/:user_id/view/:role", api.ViewProfile)

		v1.POST("/checkins/prefs", api.SetCheckInPrefs)
		v1.POST("/checkins/:user_id/prompt", api.SendCheckInPrompt)
		v1.POST("/checkins/:user_id/response", api.RecordCheckInResponse)
		v1.GET("/checkins/:user_id/status", api.GetCheckInStatus)

		v1.POST("/reminders", api.CreateReminder)
		v1.GET("/reminders/:user_id", api.ListReminders)
		v1.POST("/reminders/:id/confirm", api.ConfirmReminder)
		v1.POST("/reminders/:id/snooze", api.SnoozeReminder)
		v1.DELETE("/reminders/:id", api.DeleteReminder)

		v1.POST("/calendar/events", api.CreateCalendarEvent)
		v1.GET("/calendar/events/:user_id", api.ListCalendarEvents)

		v1.POST("/notifications", api.SendNotification)

		v1.GET("/caregiver/dashboard", api.CaregiverDashboard)
		v1.GET("/audit/entries", api.ListAuditEntries)
	}

	return &testEnv{router: router, auditLog: auditLog, clock: clock}
}

// doJSON performs a request with an optional JSON body and returns the recorder
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doRaw serves a prepared request and returns the recorder
func (e *testEnv) doRaw(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeJSON unmarshals the recorded body into out
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

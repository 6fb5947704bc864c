package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agecare/companion-api/internal/audit"
	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCheckInService(t *testing.T) (*CheckInService, *audit.Logger, *fakeClock) {
	t.Helper()
	clock := newFakeClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	logger := logging.NewSafeLogger(zap.NewNop())
	auditLog := audit.NewLogger(logger, clock.Now)
	return NewCheckInService(logger, auditLog, clock.Now), auditLog, clock
}

func setPrefs(t *testing.T, s *CheckInService, userID string, minutes int) {
	t.Helper()
	require.NoError(t, s.SetPrefs(context.Background(), models.CheckInPrefsRequest{
		UserID:               userID,
		CaregiverContact:     "carer@example.com",
		EscalateAfterMinutes: minutes,
	}))
}

func TestCheckInService_SetPrefs_Validation(t *testing.T) {
	s, _, _ := newTestCheckInService(t)
	ctx := context.Background()

	err := s.SetPrefs(ctx, models.CheckInPrefsRequest{UserID: "", CaregiverContact: "c", EscalateAfterMinutes: 30})
	assert.True(t, errors.Is(err, models.ErrInvalidInput))

	err = s.SetPrefs(ctx, models.CheckInPrefsRequest{UserID: "elder-1", CaregiverContact: "c", EscalateAfterMinutes: 0})
	assert.True(t, errors.Is(err, models.ErrInvalidInput))

	err = s.SetPrefs(ctx, models.CheckInPrefsRequest{UserID: "elder-1", CaregiverContact: "  ", EscalateAfterMinutes: 30})
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestCheckInService_SetPrefs_CreatesStateWithoutTouchingExisting(t *testing.T) {
	s, _, _ := newTestCheckInService(t)
	ctx := context.Background()

	setPrefs(t, s, "elder-1", 30)
	st, ok := s.State("elder-1")
	require.True(t, ok)
	assert.Nil(t, st.LastPrompt)
	assert.Nil(t, st.LastResponse)

	// Re-registration must not clear an existing prompt timestamp
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))
	setPrefs(t, s, "elder-1", 60)
	st, ok = s.State("elder-1")
	require.True(t, ok)
	assert.NotNil(t, st.LastPrompt)
}

func TestCheckInService_EvaluateEscalation_NoPrefs(t *testing.T) {
	s, _, _ := newTestCheckInService(t)
	ctx := context.Background()

	// Benign query: no prefs, no prompt, never an error
	status, err := s.EvaluateEscalation(ctx, "stranger")
	require.NoError(t, err)
	assert.False(t, status.EscalationNeeded)
	assert.Nil(t, status.LastPrompt)
	assert.Nil(t, status.LastResponse)
}

func TestCheckInService_EvaluateEscalation_NoPromptNeverFires(t *testing.T) {
	s, _, clock := newTestCheckInService(t)
	ctx := context.Background()
	setPrefs(t, s, "elder-1", 30)

	clock.Advance(24 * time.Hour)
	status, err := s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)
	assert.False(t, status.EscalationNeeded)
	assert.Empty(t, s.Escalations())
}

func TestCheckInService_EscalationThresholdBoundary(t *testing.T) {
	s, _, clock := newTestCheckInService(t)
	ctx := context.Background()
	setPrefs(t, s, "elder-1", 30)
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))

	// One second short of the threshold: no escalation
	clock.Advance(29*time.Minute + 59*time.Second)
	status, err := s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)
	assert.False(t, status.EscalationNeeded)

	// Exactly at the threshold: escalation (inclusive boundary)
	clock.Advance(1 * time.Second)
	status, err = s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)
	assert.True(t, status.EscalationNeeded)
	assert.Len(t, s.Escalations(), 1)
}

func TestCheckInService_ResponseClearsEscalation(t *testing.T) {
	s, _, clock := newTestCheckInService(t)
	ctx := context.Background()
	setPrefs(t, s, "elder-1", 30)
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))

	clock.Advance(5 * time.Minute)
	require.NoError(t, s.RecordResponse(ctx, "elder-1"))

	clock.Advance(26 * time.Minute) // 31m after the prompt
	status, err := s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)
	assert.False(t, status.EscalationNeeded)
	assert.Empty(t, s.Escalations())
}

func TestCheckInService_StaleResponseDoesNotClear(t *testing.T) {
	s, _, clock := newTestCheckInService(t)
	ctx := context.Background()
	setPrefs(t, s, "elder-1", 30)

	// Response first, prompt later: the response predates the prompt
	require.NoError(t, s.RecordResponse(ctx, "elder-1"))
	clock.Advance(10 * time.Minute)
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))

	clock.Advance(31 * time.Minute)
	status, err := s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)
	assert.True(t, status.EscalationNeeded)
}

func TestCheckInService_RepeatedEscalationAppendsEveryCall(t *testing.T) {
	s, auditLog, clock := newTestCheckInService(t)
	ctx := context.Background()
	setPrefs(t, s, "elder-1", 30)
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))
	clock.Advance(31 * time.Minute)

	before := auditLog.Len()

	// No deduplication or cooldown: every qualifying call appends again
	_, err := s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)
	assert.Len(t, s.Escalations(), 1)
	assert.Equal(t, before+1, auditLog.Len())

	_, err = s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)
	assert.Len(t, s.Escalations(), 2)
	assert.Equal(t, before+2, auditLog.Len())
}

func TestCheckInService_NewPromptFlipsEscalationBack(t *testing.T) {
	s, _, clock := newTestCheckInService(t)
	ctx := context.Background()
	setPrefs(t, s, "elder-1", 30)
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))
	clock.Advance(31 * time.Minute)

	status, err := s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)
	require.True(t, status.EscalationNeeded)

	// Escalation is re-derived, not stored: a fresh prompt resets the window
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))
	status, err = s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)
	assert.False(t, status.EscalationNeeded)

	// The earlier escalation remains the durable trace
	assert.Len(t, s.Escalations(), 1)
}

func TestCheckInService_EscalationMessageContents(t *testing.T) {
	s, _, clock := newTestCheckInService(t)
	ctx := context.Background()
	setPrefs(t, s, "elder-1", 30)
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))
	clock.Advance(30 * time.Minute)

	_, err := s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)

	escalations := s.Escalations()
	require.Len(t, escalations, 1)
	assert.Equal(t, "Escalate for elder-1 to carer@example.com at 2025-03-01T09:30:00Z", escalations[0])
}

func TestCheckInService_AuditCompleteness(t *testing.T) {
	s, auditLog, clock := newTestCheckInService(t)
	ctx := context.Background()

	setPrefs(t, s, "elder-1", 30)
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))
	require.NoError(t, s.RecordResponse(ctx, "elder-1"))
	clock.Advance(31 * time.Minute)
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))
	clock.Advance(31 * time.Minute)
	_, err := s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)

	var actions []string
	for _, e := range auditLog.Entries() {
		actions = append(actions, e.Action)
	}
	assert.Equal(t, []string{
		audit.ActionCheckInSetPrefs,
		audit.ActionCheckInPrompt,
		audit.ActionCheckInResponse,
		audit.ActionCheckInPrompt,
		audit.ActionCheckInEscalate,
	}, actions)
}

func TestCheckInService_PhoneContactNormalizedToE164(t *testing.T) {
	s, _, clock := newTestCheckInService(t)
	ctx := context.Background()

	require.NoError(t, s.SetPrefs(ctx, models.CheckInPrefsRequest{
		UserID:               "elder-1",
		CaregiverContact:     "+1 (650) 253-0000",
		EscalateAfterMinutes: 30,
	}))
	require.NoError(t, s.SendPrompt(ctx, "elder-1"))
	clock.Advance(30 * time.Minute)
	_, err := s.EvaluateEscalation(ctx, "elder-1")
	require.NoError(t, err)

	escalations := s.Escalations()
	require.Len(t, escalations, 1)
	assert.Contains(t, escalations[0], "+16502530000")
}

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agecare/companion-api/internal/audit"
	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/models"
	"github.com/agecare/companion-api/internal/observability"
	"github.com/agecare/companion-api/internal/utils"
	"go.uber.org/zap"
)

// CheckInService tracks per-user caregiver preferences and prompt/response
// timestamps and evaluates the escalation condition on demand. There is no
// background timer: escalation is only as fresh as the last status query.
type CheckInService struct {
	mu          sync.Mutex
	prefs       map[string]models.CaregiverPrefs
	state       map[string]*models.CheckInState
	escalations []string

	auditLog *audit.Logger
	clock    func() time.Time
	logger   *logging.SafeLogger
}

// NewCheckInService creates a check-in service. A nil clock means time.Now.
func NewCheckInService(logger *logging.SafeLogger, auditLog *audit.Logger, clock func() time.Time) *CheckInService {
	if clock == nil {
		clock = time.Now
	}
	return &CheckInService{
		prefs:    make(map[string]models.CaregiverPrefs),
		state:    make(map[string]*models.CheckInState),
		auditLog: auditLog,
		clock:    clock,
		logger:   logger,
	}
}

// SetPrefs upserts caregiver preferences for a user (last write wins) and
// makes sure a check-in state exists without disturbing an existing one.
func (s *CheckInService) SetPrefs(ctx context.Context, req models.CheckInPrefsRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: user_id must not be empty", models.ErrInvalidInput)
	}
	if req.EscalateAfterMinutes <= 0 {
		return fmt.Errorf("%w: escalate_after_minutes must be positive, got %d", models.ErrInvalidInput, req.EscalateAfterMinutes)
	}
	contact, err := utils.NormalizeContact(req.CaregiverContact)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.prefs[req.UserID] = models.CaregiverPrefs{
		UserID:               req.UserID,
		CaregiverContact:     contact,
		EscalateAfterMinutes: req.EscalateAfterMinutes,
	}
	s.ensureStateLocked(req.UserID)
	s.mu.Unlock()

	s.auditLog.Log(req.UserID, audit.ActionCheckInSetPrefs, "")
	s.logger.Info("caregiver prefs set",
		zap.String("user_id", req.UserID),
		zap.String("contact", observability.MaskContact(contact)),
		zap.Int("escalate_after_minutes", req.EscalateAfterMinutes),
	)
	return nil
}

// SendPrompt records that a caregiving prompt was issued to the user now
func (s *CheckInService) SendPrompt(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user_id must not be empty", models.ErrInvalidInput)
	}

	now := s.clock()
	s.mu.Lock()
	st := s.ensureStateLocked(userID)
	st.LastPrompt = &now
	s.mu.Unlock()

	s.auditLog.Log(userID, audit.ActionCheckInPrompt, "")
	return nil
}

// RecordResponse records that the user answered a check-in now
func (s *CheckInService) RecordResponse(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user_id must not be empty", models.ErrInvalidInput)
	}

	now := s.clock()
	s.mu.Lock()
	st := s.ensureStateLocked(userID)
	st.LastResponse = &now
	s.mu.Unlock()

	s.auditLog.Log(userID, audit.ActionCheckInResponse, "")
	return nil
}

// EvaluateEscalation computes the escalation condition fresh, as of now.
// The condition holds when prefs exist, a prompt was sent, the most recent
// response (if any) predates that prompt, and the prompt has been
// unanswered for at least the configured number of minutes (inclusive).
// A qualifying call records one escalation — every qualifying call does,
// with no deduplication or cooldown across calls. The returned status is
// never an error for a user with no prefs or no state.
func (s *CheckInService) EvaluateEscalation(ctx context.Context, userID string) (models.CheckInStatus, error) {
	if userID == "" {
		return models.CheckInStatus{}, fmt.Errorf("%w: user_id must not be empty", models.ErrInvalidInput)
	}

	now := s.clock()

	s.mu.Lock()
	st := s.ensureStateLocked(userID)
	prefs, hasPrefs := s.prefs[userID]

	escalate := false
	var msg string
	if hasPrefs && st.LastPrompt != nil {
		unanswered := st.LastResponse == nil || st.LastResponse.Before(*st.LastPrompt)
		threshold := time.Duration(prefs.EscalateAfterMinutes) * time.Minute
		if unanswered && now.Sub(*st.LastPrompt) >= threshold {
			escalate = true
			msg = fmt.Sprintf("Escalate for %s to %s at %s", userID, prefs.CaregiverContact, now.UTC().Format(time.RFC3339))
			s.escalations = append(s.escalations, msg)
		}
	}

	status := models.CheckInStatus{
		UserID:           userID,
		LastPrompt:       st.LastPrompt,
		LastResponse:     st.LastResponse,
		EscalationNeeded: escalate,
	}
	s.mu.Unlock()

	if escalate {
		observability.EscalationsTriggered.Inc()
		s.auditLog.Log(userID, audit.ActionCheckInEscalate, msg)
		s.logger.Warn("check-in escalation recorded",
			zap.String("user_id", userID),
			zap.String("contact", observability.MaskContact(prefs.CaregiverContact)),
		)
	}
	return status, nil
}

// State returns a snapshot of the user's check-in state, if one exists
func (s *CheckInService) State(userID string) (models.CheckInState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.state[userID]
	if !ok {
		return models.CheckInState{}, false
	}
	return *st, true
}

// Escalations returns a copy of every escalation recorded so far. The list
// is append-only; it is the only durable trace of past escalations.
func (s *CheckInService) Escalations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.escalations))
	copy(out, s.escalations)
	return out
}

// ensureStateLocked lazily creates the per-user state; callers hold the lock
func (s *CheckInService) ensureStateLocked(userID string) *models.CheckInState {
	st, ok := s.state[userID]
	if !ok {
		st = &models.CheckInState{UserID: userID}
		s.state[userID] = st
	}
	return st
}

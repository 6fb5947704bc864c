package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/agecare/companion-api/internal/audit"
	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/models"
	"go.uber.org/zap"
)

// ReminderService is the in-memory reminder store with create, list,
// delete, confirm, snooze, and due-at queries.
type ReminderService struct {
	mu        sync.Mutex
	reminders map[int]*models.Reminder
	nextID    int

	auditLog *audit.Logger
	clock    func() time.Time
	logger   *logging.SafeLogger
}

// NewReminderService creates a reminder service. A nil clock means time.Now.
func NewReminderService(logger *logging.SafeLogger, auditLog *audit.Logger, clock func() time.Time) *ReminderService {
	if clock == nil {
		clock = time.Now
	}
	return &ReminderService{
		reminders: make(map[int]*models.Reminder),
		nextID:    1,
		auditLog:  auditLog,
		clock:     clock,
		logger:    logger,
	}
}

// Create stores a new reminder and returns it
func (s *ReminderService) Create(ctx context.Context, req models.ReminderCreateRequest) (models.Reminder, error) {
	if req.UserID == "" {
		return models.Reminder{}, fmt.Errorf("%w: user_id must not be empty", models.ErrInvalidInput)
	}
	if req.Text == "" {
		return models.Reminder{}, fmt.Errorf("%w: text must not be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	rem := &models.Reminder{
		ID:     s.nextID,
		UserID: req.UserID,
		Text:   req.Text,
		When:   req.When,
	}
	s.reminders[rem.ID] = rem
	s.nextID++
	created := *rem
	s.mu.Unlock()

	s.auditLog.Log(req.UserID, audit.ActionReminderCreate, fmt.Sprintf("id=%d", created.ID))
	s.logger.Info("reminder created",
		zap.Int("id", created.ID),
		zap.String("user_id", req.UserID),
	)
	return created, nil
}

// ListForUser returns the user's reminders ordered by ID
func (s *ReminderService) ListForUser(ctx context.Context, userID string) []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Reminder
	for _, r := range s.reminders {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Delete removes a reminder. Deleting an unknown ID is a no-op and does
// not audit.
func (s *ReminderService) Delete(ctx context.Context, reminderID int, actor string) {
	s.mu.Lock()
	_, ok := s.reminders[reminderID]
	if ok {
		delete(s.reminders, reminderID)
	}
	s.mu.Unlock()

	if ok {
		s.auditLog.Log(actor, audit.ActionReminderDelete, fmt.Sprintf("id=%d", reminderID))
	}
}

// Confirm marks a reminder as done. Unknown IDs are a no-op.
func (s *ReminderService) Confirm(ctx context.Context, reminderID int, actor string) {
	s.mu.Lock()
	r, ok := s.reminders[reminderID]
	if ok {
		r.Confirmed = true
	}
	s.mu.Unlock()

	if ok {
		s.auditLog.Log(actor, audit.ActionReminderConfirm, fmt.Sprintf("id=%d", reminderID))
	}
}

// Snooze pushes a reminder's due time to now + minutes. Unknown IDs are a
// no-op.
func (s *ReminderService) Snooze(ctx context.Context, reminderID, minutes int, actor string) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: minutes must be positive, got %d", models.ErrInvalidInput, minutes)
	}

	until := s.clock().Add(time.Duration(minutes) * time.Minute)
	s.mu.Lock()
	r, ok := s.reminders[reminderID]
	if ok {
		r.SnoozedUntil = &until
	}
	s.mu.Unlock()

	if ok {
		s.auditLog.Log(actor, audit.ActionReminderSnooze, fmt.Sprintf("id=%d minutes=%d", reminderID, minutes))
	}
	return nil
}

// DueAt returns every unconfirmed reminder due at the given instant,
// honoring snoozes, ordered by ID.
func (s *ReminderService) DueAt(ctx context.Context, now time.Time) []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []models.Reminder
	for _, r := range s.reminders {
		if r.DueBy(now) {
			due = append(due, *r)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	return due
}

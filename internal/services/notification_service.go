package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/agecare/companion-api/internal/audit"
	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/models"
	"go.uber.org/zap"
)

// NotificationService is the prototype delivery layer: it records each
// send instead of delivering anything.
type NotificationService struct {
	mu   sync.Mutex
	sent []models.NotificationRecord

	auditLog *audit.Logger
	logger   *logging.SafeLogger
}

// NewNotificationService creates a notification service
func NewNotificationService(logger *logging.SafeLogger, auditLog *audit.Logger) *NotificationService {
	return &NotificationService{
		auditLog: auditLog,
		logger:   logger,
	}
}

// Send records a notification and returns the running sent count. The
// audit actor is the recipient.
func (s *NotificationService) Send(ctx context.Context, req models.NotificationRequest) (int, error) {
	if req.To == "" {
		return 0, fmt.Errorf("%w: to must not be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	s.sent = append(s.sent, models.NotificationRecord{
		Channel: req.Channel,
		To:      req.To,
		Message: req.Message,
	})
	count := len(s.sent)
	s.mu.Unlock()

	s.auditLog.Log(req.To, audit.ActionNotificationSend, "channel="+req.Channel)
	s.logger.Info("notification recorded",
		zap.String("channel", req.Channel),
		zap.Int("sent_count", count),
	)
	return count, nil
}

// Sent returns a copy of everything recorded so far
func (s *NotificationService) Sent() []models.NotificationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.NotificationRecord, len(s.sent))
	copy(out, s.sent)
	return out
}

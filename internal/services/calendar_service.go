package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/agecare/companion-api/internal/audit"
	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/models"
	"go.uber.org/zap"
)

// CalendarService is the in-memory calendar event store
type CalendarService struct {
	mu     sync.Mutex
	events map[int]models.CalendarEvent
	nextID int

	auditLog *audit.Logger
	logger   *logging.SafeLogger
}

// NewCalendarService creates a calendar service
func NewCalendarService(logger *logging.SafeLogger, auditLog *audit.Logger) *CalendarService {
	return &CalendarService{
		events:   make(map[int]models.CalendarEvent),
		nextID:   1,
		auditLog: auditLog,
		logger:   logger,
	}
}

// Create stores a new calendar event and returns it
func (s *CalendarService) Create(ctx context.Context, req models.CalendarEventCreateRequest) (models.CalendarEvent, error) {
	if req.UserID == "" {
		return models.CalendarEvent{}, fmt.Errorf("%w: user_id must not be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	ev := models.CalendarEvent{
		ID:     s.nextID,
		UserID: req.UserID,
		Title:  req.Title,
		Start:  req.Start,
	}
	s.events[ev.ID] = ev
	s.nextID++
	s.mu.Unlock()

	s.auditLog.Log(req.UserID, audit.ActionCalendarCreate, fmt.Sprintf("id=%d", ev.ID))
	s.logger.Info("calendar event created",
		zap.Int("id", ev.ID),
		zap.String("user_id", req.UserID),
	)
	return ev, nil
}

// ListForUser returns the user's events ordered by ID
func (s *CalendarService) ListForUser(ctx context.Context, userID string) []models.CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.CalendarEvent
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

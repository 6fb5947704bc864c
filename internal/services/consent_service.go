package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agecare/companion-api/internal/audit"
	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/models"
	"go.uber.org/zap"
)

// ConsentService owns profiles and consent grants and computes
// least-privilege profile views. A field is never exposed unless an
// explicit grant matching the (user, viewer role) pair names it; grants
// are additive and the effective set is the union over every grant made.
type ConsentService struct {
	mu       sync.RWMutex
	profiles map[string]models.Profile
	consents []models.ConsentRecord

	auditLog *audit.Logger
	clock    func() time.Time
	logger   *logging.SafeLogger
}

// NewConsentService creates a consent service. A nil clock means time.Now.
func NewConsentService(logger *logging.SafeLogger, auditLog *audit.Logger, clock func() time.Time) *ConsentService {
	if clock == nil {
		clock = time.Now
	}
	return &ConsentService{
		profiles: make(map[string]models.Profile),
		auditLog: auditLog,
		clock:    clock,
		logger:   logger,
	}
}

// AddProfile registers a profile. Registering an already registered
// user_id fails with ErrProfileExists; profiles are immutable after
// creation and re-registration must not silently replace one.
func (s *ConsentService) AddProfile(ctx context.Context, req models.ProfileCreateRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: user_id must not be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	if _, exists := s.profiles[req.UserID]; exists {
		s.mu.Unlock()
		return fmt.Errorf("%w: user_id %q", models.ErrProfileExists, req.UserID)
	}
	s.profiles[req.UserID] = models.Profile{
		UserID: req.UserID,
		Name:   req.Name,
		Age:    req.Age,
	}
	s.mu.Unlock()

	s.auditLog.Log(req.UserID, audit.ActionProfileCreate, "")
	s.logger.Info("profile created", zap.String("user_id", req.UserID))
	return nil
}

// GrantConsent appends a consent record stamped with the current time.
// No referential integrity is enforced: both user_id and viewer_role are
// free-form and a grant may precede profile registration.
func (s *ConsentService) GrantConsent(ctx context.Context, req models.ConsentGrantRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: user_id must not be empty", models.ErrInvalidInput)
	}
	if req.ViewerRole == "" {
		return fmt.Errorf("%w: viewer_role must not be empty", models.ErrInvalidInput)
	}

	fields := make(map[string]struct{}, len(req.AllowedFields))
	for _, f := range req.AllowedFields {
		fields[f] = struct{}{}
	}

	record := models.ConsentRecord{
		UserID:        req.UserID,
		ViewerRole:    req.ViewerRole,
		AllowedFields: fields,
		GrantedAt:     s.clock(),
	}

	s.mu.Lock()
	s.consents = append(s.consents, record)
	s.mu.Unlock()

	s.auditLog.Log(req.UserID, audit.ActionConsentGrant, req.ViewerRole)
	s.logger.Info("consent granted",
		zap.String("user_id", req.UserID),
		zap.String("viewer_role", req.ViewerRole),
		zap.Int("fields", len(fields)),
	)
	return nil
}

// ViewProfile returns the subset of the profile the viewer role has been
// granted. Ungranted fields are absent from the view, never present with
// placeholder values. The audit entry is attributed to the viewer role,
// not the profile owner.
func (s *ConsentService) ViewProfile(ctx context.Context, userID, viewerRole string) (*models.ProfileView, error) {
	s.mu.RLock()
	profile, exists := s.profiles[userID]
	allowed := s.allowedFieldsLocked(userID, viewerRole)
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: user_id %q", models.ErrProfileNotFound, userID)
	}

	view := &models.ProfileView{}
	if _, ok := allowed["name"]; ok {
		name := profile.Name
		view.Name = &name
	}
	if _, ok := allowed["age"]; ok {
		age := profile.Age
		view.Age = &age
	}

	s.auditLog.Log(viewerRole, audit.ActionProfileView, "user_id="+userID)
	return view, nil
}

// EffectiveFields returns the union of allowed fields over all grants for
// the (user, role) pair.
func (s *ConsentService) EffectiveFields(userID, viewerRole string) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allowedFieldsLocked(userID, viewerRole)
}

// allowedFieldsLocked computes the grant union; callers hold at least a
// read lock.
func (s *ConsentService) allowedFieldsLocked(userID, viewerRole string) map[string]struct{} {
	fields := make(map[string]struct{})
	for _, c := range s.consents {
		if c.UserID != userID || c.ViewerRole != viewerRole {
			continue
		}
		for f := range c.AllowedFields {
			fields[f] = struct{}{}
		}
	}
	return fields
}

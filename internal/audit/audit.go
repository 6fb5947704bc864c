package audit

import (
	"fmt"
	"sync"
	"time"

	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/observability"
	"go.uber.org/zap"
)

// Audit action tags. Every state-mutating operation and every sensitive
// read appends exactly one entry carrying one of these.
const (
	ActionProfileCreate    = "profile_create"
	ActionConsentGrant     = "consent_grant"
	ActionProfileView      = "profile_view"
	ActionCheckInSetPrefs  = "checkin_set_prefs"
	ActionCheckInPrompt    = "checkin_prompt_sent"
	ActionCheckInResponse  = "checkin_response_received"
	ActionCheckInEscalate  = "checkin_escalation"
	ActionReminderCreate   = "reminder_create"
	ActionReminderDelete   = "reminder_delete"
	ActionReminderConfirm  = "reminder_confirm"
	ActionReminderSnooze   = "reminder_snooze"
	ActionCalendarCreate   = "calendar_create"
	ActionNotificationSend = "notification_send"
)

// Entry is an immutable audit record of who did what
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
}

// String renders the entry in the audit log's wire format
func (e Entry) String() string {
	s := fmt.Sprintf("%s actor=%s action=%s", e.Timestamp.UTC().Format(time.RFC3339), e.Actor, e.Action)
	if e.Details != "" {
		s += " details=" + e.Details
	}
	return s
}

// Logger is the process-wide append-only audit log. Appends are serialized
// under a mutex and happen synchronously: a caller that mutated state and
// logged the mutation observes its own entry on the next read.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
	clock   func() time.Time
	logger  *logging.SafeLogger
}

// NewLogger creates an audit logger. A nil clock means time.Now.
func NewLogger(logger *logging.SafeLogger, clock func() time.Time) *Logger {
	if clock == nil {
		clock = time.Now
	}
	return &Logger{
		clock:  clock,
		logger: logger,
	}
}

// Log appends one entry. It never fails and never blocks meaningfully.
func (l *Logger) Log(actor, action, details string) {
	entry := Entry{
		Timestamp: l.clock(),
		Actor:     actor,
		Action:    action,
		Details:   details,
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()

	observability.AuditEntries.WithLabelValues(action).Inc()
	l.logger.Debug("audit entry appended",
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("details", details),
	)
}

// Entries returns a copy of all entries in insertion order
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ListEntries returns all entries formatted, in insertion order
func (l *Logger) ListEntries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.String())
	}
	return out
}

// Len returns the number of entries
func (l *Logger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

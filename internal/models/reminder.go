package models

import "time"

// Reminder is a scheduled reminder for a user
type Reminder struct {
	ID           int        `json:"id"`
	UserID       string     `json:"user_id"`
	Text         string     `json:"text"`
	When         time.Time  `json:"when"`
	SnoozedUntil *time.Time `json:"snoozed_until"`
	Confirmed    bool       `json:"confirmed"`
}

// DueBy reports whether the reminder is due at the given instant. A snooze
// overrides the original schedule; confirmed reminders are never due.
func (r Reminder) DueBy(now time.Time) bool {
	if r.Confirmed {
		return false
	}
	target := r.When
	if r.SnoozedUntil != nil {
		target = *r.SnoozedUntil
	}
	return !target.After(now)
}

// ReminderCreateRequest is the payload for creating a reminder
type ReminderCreateRequest struct {
	UserID string    `json:"user_id" binding:"required"`
	Text   string    `json:"text" binding:"required"`
	When   time.Time `json:"when" binding:"required"`
}

// ReminderActionRequest carries the acting party for confirm/snooze/delete
type ReminderActionRequest struct {
	Actor   string `json:"actor" binding:"required"`
	Minutes *int   `json:"minutes,omitempty"`
}

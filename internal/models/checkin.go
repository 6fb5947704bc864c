package models

import "time"

// CaregiverPrefs holds a user's escalation preferences. Re-registration
// replaces the record wholesale (last write wins).
type CaregiverPrefs struct {
	UserID               string `json:"user_id"`
	CaregiverContact     string `json:"caregiver_contact"`
	EscalateAfterMinutes int    `json:"escalate_after_minutes"`
}

// CheckInState tracks the most recent prompt and response per user. It is
// created lazily on first touch with both timestamps unset and is never
// deleted.
type CheckInState struct {
	UserID       string     `json:"user_id"`
	LastPrompt   *time.Time `json:"last_prompt"`
	LastResponse *time.Time `json:"last_response"`
}

// CheckInPrefsRequest is the payload for registering caregiver preferences
type CheckInPrefsRequest struct {
	UserID               string `json:"user_id" binding:"required"`
	CaregiverContact     string `json:"caregiver_contact" binding:"required"`
	EscalateAfterMinutes int    `json:"escalate_after_minutes" binding:"required"`
}

// CheckInStatus is the result of an escalation evaluation. EscalationNeeded
// is re-derived on every call, never stored: a new prompt or response can
// flip it back without any explicit reset.
type CheckInStatus struct {
	UserID           string     `json:"user_id"`
	LastPrompt       *time.Time `json:"last_prompt"`
	LastResponse     *time.Time `json:"last_response"`
	EscalationNeeded bool       `json:"escalation_needed"`
}

package models

import "time"

// CalendarEvent is a scheduled event on a user's calendar
type CalendarEvent struct {
	ID     int       `json:"id"`
	UserID string    `json:"user_id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
}

// CalendarEventCreateRequest is the payload for creating a calendar event
type CalendarEventCreateRequest struct {
	UserID string    `json:"user_id" binding:"required"`
	Title  string    `json:"title" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
}

package models

// NotificationRecord is a notification that was handed to the delivery
// layer. The prototype delivery layer only records it.
type NotificationRecord struct {
	Channel string `json:"channel"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// NotificationRequest is the payload for sending a notification
type NotificationRequest struct {
	Channel string `json:"channel" binding:"required"`
	To      string `json:"to" binding:"required"`
	Message string `json:"message" binding:"required"`
}

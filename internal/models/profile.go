package models

// ProfileFieldNames is the fixed universe of profile attributes a consent
// grant can expose, in presentation order. Grants naming anything else are
// silently ineffective.
var ProfileFieldNames = []string{"name", "age"}

// Profile represents a registered user profile. Profiles are immutable
// after creation; there is no update operation.
type Profile struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
}

// ProfileCreateRequest is the payload for registering a profile
type ProfileCreateRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Age    int    `json:"age" binding:"gte=0"`
}

// ProfileView is a consent-filtered projection of a profile. A nil field
// means the viewer role was never granted that attribute; granted fields
// are always present, never null placeholders.
type ProfileView struct {
	Name *string `json:"name,omitempty"`
	Age  *int    `json:"age,omitempty"`
}

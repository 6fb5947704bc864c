package models

import "time"

// ConsentRecord is a single additive consent grant. Records are append-only:
// the effective allowed-field set for a (user, role) pair is the union over
// every record ever granted for that pair. There is no revocation operation,
// so access can never be narrowed once granted.
type ConsentRecord struct {
	UserID        string              `json:"user_id"`
	ViewerRole    string              `json:"viewer_role"`
	AllowedFields map[string]struct{} `json:"-"`
	GrantedAt     time.Time           `json:"granted_at"`
}

// Allows reports whether this record grants the named field
func (r ConsentRecord) Allows(field string) bool {
	_, ok := r.AllowedFields[field]
	return ok
}

// ConsentGrantRequest is the payload for granting consent. Neither user_id
// nor viewer_role is checked against existing profiles; a grant may precede
// registration.
type ConsentGrantRequest struct {
	UserID        string   `json:"user_id" binding:"required"`
	ViewerRole    string   `json:"viewer_role" binding:"required"`
	AllowedFields []string `json:"allowed_fields" binding:"required"`
}

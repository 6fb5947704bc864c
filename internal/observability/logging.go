package observability

import (
	"github.com/agecare/companion-api/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskContact masks a caregiver contact for logging. Whatever channel the
// contact uses (phone, email), only a short prefix is kept.
func MaskContact(contact string) string {
	if len(contact) <= 4 {
		return "****"
	}
	return contact[:4] + "****"
}

package utils

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/agecare/companion-api/internal/models"
	"github.com/nyaruka/phonenumbers"
)

// NormalizeContact validates a caregiver contact and returns a canonical
// form. Contacts that look like phone numbers must parse as valid numbers
// and come back in E.164; email addresses come back as the bare address.
// Anything else is kept verbatim so that prefs registration stays total
// for free-form contacts.
func NormalizeContact(contact string) (string, error) {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return "", fmt.Errorf("%w: caregiver_contact must not be empty", models.ErrInvalidInput)
	}

	if looksLikePhone(contact) {
		num, err := phonenumbers.Parse(contact, "")
		if err != nil {
			return "", fmt.Errorf("%w: failed to parse phone contact: %v", models.ErrInvalidInput, err)
		}
		if !phonenumbers.IsValidNumber(num) {
			return "", fmt.Errorf("%w: invalid phone contact %q", models.ErrInvalidInput, contact)
		}
		return phonenumbers.Format(num, phonenumbers.E164), nil
	}

	if strings.Contains(contact, "@") {
		addr, err := mail.ParseAddress(contact)
		if err != nil {
			return "", fmt.Errorf("%w: invalid email contact %q", models.ErrInvalidInput, contact)
		}
		return addr.Address, nil
	}

	return contact, nil
}

// looksLikePhone reports whether the string is mostly dial characters
// starting with an international prefix
func looksLikePhone(s string) bool {
	if !strings.HasPrefix(s, "+") {
		return false
	}
	for _, r := range s[1:] {
		if !unicode.IsDigit(r) && !strings.ContainsRune(" -()", r) {
			return false
		}
	}
	return true
}

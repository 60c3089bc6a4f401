// Package contact relays contact-form submissions to the transactional
// mail provider.
package contact

import (
	"regexp"
	"strings"

	"github.com/go-faster/errors"
)

// ErrInvalid is returned when a submission fails validation.
var ErrInvalid = errors.New("invalid contact message")

// PhoneFallback substitutes a missing phone number in the outgoing mail.
const PhoneFallback = "Non fourni"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Message is one contact-form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

// Validate checks required fields and the email shape.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.Wrap(ErrInvalid, "name is required")
	}
	if !ValidateEmail(m.Email) {
		return errors.Wrap(ErrInvalid, "email is malformed")
	}
	if strings.TrimSpace(m.Body) == "" {
		return errors.Wrap(ErrInvalid, "message is required")
	}
	return nil
}

package domain

import "regexp"

// emailPattern is deliberately loose: one non-space local part, an @, and a
// domain containing a dot. Deeper verification belongs to the verification
// flag on EmailContactInfo, not the type.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// EmailAddress is a validated email address.
// The zero value is not valid; obtain one via NewEmailAddress.
type EmailAddress struct {
	value string
}

// NewEmailAddress validates raw and returns it wrapped as an EmailAddress.
// The returned error wraps ErrInvalidInput and carries the reason.
func NewEmailAddress(raw string) (EmailAddress, error) {
	if raw == "" {
		return EmailAddress{}, invalidf("email address must not be empty")
	}
	if !emailPattern.MatchString(raw) {
		return EmailAddress{}, invalidf("%q is not a valid email address", raw)
	}
	return EmailAddress{value: raw}, nil
}

// ParseEmailAddress is the option-style constructor: the failure reason is
// not retained.
func ParseEmailAddress(raw string) (EmailAddress, bool) {
	return option(NewEmailAddress(raw))
}

// String unwraps the validated address. Total: an EmailAddress can only have
// been constructed validly.
func (e EmailAddress) String() string {
	return e.value
}

// IsZero returns true for the uninitialised zero value.
func (e EmailAddress) IsZero() bool {
	return e.value == ""
}

package domain

import "strings"

// PhoneNumber is a validated phone number: an optional leading +, then 7 to
// 15 digits (the E.164 bound). Common separators are stripped before
// validation, so "(555) 123-4567" and "5551234567" construct equal values.
// The zero value is not valid; obtain one via NewPhoneNumber.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw and returns it wrapped as a PhoneNumber.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		default:
			return r
		}
	}, raw)

	digits := cleaned
	if strings.HasPrefix(cleaned, "+") {
		digits = cleaned[1:]
	}
	if len(digits) < 7 || len(digits) > 15 {
		return PhoneNumber{}, invalidf("phone number must have 7 to 15 digits, got %q", raw)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return PhoneNumber{}, invalidf("phone number contains non-digit character in %q", raw)
		}
	}
	return PhoneNumber{value: cleaned}, nil
}

// ParsePhoneNumber is the option-style constructor.
func ParsePhoneNumber(raw string) (PhoneNumber, bool) {
	return option(NewPhoneNumber(raw))
}

// String unwraps the validated number with separators stripped.
func (p PhoneNumber) String() string {
	return p.value
}

// IsZero returns true for the uninitialised zero value.
func (p PhoneNumber) IsZero() bool {
	return p.value == ""
}

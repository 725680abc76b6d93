package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNameLength bounds first and last names.
const maxNameLength = 50

// PersonalName is a person's name. First and last names are required and at
// most 50 characters; the middle initial is optional and, when present,
// exactly one letter. There is no cross-field invariant.
// Obtain one via NewPersonalName.
type PersonalName struct {
	First  string
	Middle string
	Last   string
}

// NewPersonalName validates and assembles a PersonalName.
// Leading and trailing whitespace is trimmed; middle may be empty.
func NewPersonalName(first, middle, last string) (PersonalName, error) {
	first = strings.TrimSpace(first)
	middle = strings.TrimSpace(middle)
	last = strings.TrimSpace(last)

	if err := validateNameField("first name", first); err != nil {
		return PersonalName{}, err
	}
	if err := validateNameField("last name", last); err != nil {
		return PersonalName{}, err
	}
	if middle != "" {
		r, size := utf8.DecodeRuneInString(middle)
		if size != len(middle) || !unicode.IsLetter(r) {
			return PersonalName{}, invalidf("middle initial must be a single letter, got %q", middle)
		}
	}
	return PersonalName{First: first, Middle: middle, Last: last}, nil
}

// validateNameField checks a required name field.
func validateNameField(field, value string) error {
	if value == "" {
		return invalidf("%s must not be empty", field)
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return invalidf("%s must be at most %d characters", field, maxNameLength)
	}
	return nil
}

// Full renders the name for display: "First M. Last", or "First Last" when
// no middle initial is present.
func (n PersonalName) Full() string {
	if n.Middle == "" {
		return n.First + " " + n.Last
	}
	return n.First + " " + n.Middle + ". " + n.Last
}

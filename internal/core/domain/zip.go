package domain

// ZipCode is a validated US ZIP code: exactly five ASCII digits.
// The zero value is not valid; obtain one via NewZipCode.
type ZipCode struct {
	value string
}

// NewZipCode validates raw and returns it wrapped as a ZipCode.
func NewZipCode(raw string) (ZipCode, error) {
	if len(raw) != 5 {
		return ZipCode{}, invalidf("zip code must be exactly five digits, got %q", raw)
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return ZipCode{}, invalidf("zip code must be exactly five digits, got %q", raw)
		}
	}
	return ZipCode{value: raw}, nil
}

// ParseZipCode is the option-style constructor.
func ParseZipCode(raw string) (ZipCode, bool) {
	return option(NewZipCode(raw))
}

// String unwraps the validated zip code.
func (z ZipCode) String() string {
	return z.value
}

// IsZero returns true for the uninitialised zero value.
func (z ZipCode) IsZero() bool {
	return z.value == ""
}

package domain

import "strings"

// stateCodes is the USPS set of state, district and territory abbreviations.
var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
	"DC": true, "AS": true, "GU": true, "MP": true, "PR": true,
	"VI": true,
}

// StateCode is a validated USPS state abbreviation, normalised to upper case.
// The zero value is not valid; obtain one via NewStateCode.
type StateCode struct {
	value string
}

// NewStateCode validates raw against the USPS set. Input is case-insensitive
// and the stored value is normalised to upper case ("ca" becomes "CA").
func NewStateCode(raw string) (StateCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !stateCodes[code] {
		return StateCode{}, invalidf("%q is not a recognised state code", raw)
	}
	return StateCode{value: code}, nil
}

// ParseStateCode is the option-style constructor.
func ParseStateCode(raw string) (StateCode, bool) {
	return option(NewStateCode(raw))
}

// String unwraps the validated, upper-cased state code.
func (s StateCode) String() string {
	return s.value
}

// IsZero returns true for the uninitialised zero value.
func (s StateCode) IsZero() bool {
	return s.value == ""
}

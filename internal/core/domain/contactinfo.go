package domain

// EmailContactInfo pairs an email address with its verification state.
// The two fields change together: replacing the address invalidates any
// previous verification, so replacement goes through WithEmail.
type EmailContactInfo struct {
	// Email is the validated address.
	Email EmailAddress

	// Verified records whether ownership of the address was confirmed.
	Verified bool
}

// WithEmail returns a copy carrying the new address with Verified reset to
// false. This is the only sanctioned way to replace the address.
func (e EmailContactInfo) WithEmail(email EmailAddress) EmailContactInfo {
	return EmailContactInfo{Email: email, Verified: false}
}

// MarkVerified returns a copy with the verification flag set.
func (e EmailContactInfo) MarkVerified() EmailContactInfo {
	e.Verified = true
	return e
}

// PostalAddress is a physical address: up to four free-form lines plus a
// validated state code and zip code. Line1 is required.
type PostalAddress struct {
	Line1 string
	Line2 string
	Line3 string
	Line4 string
	State StateCode
	Zip   ZipCode
}

// NewPostalAddress validates and assembles a PostalAddress.
func NewPostalAddress(line1, line2, line3, line4 string, state StateCode, zip ZipCode) (PostalAddress, error) {
	if line1 == "" {
		return PostalAddress{}, invalidf("address line 1 must not be empty")
	}
	if state.IsZero() {
		return PostalAddress{}, invalidf("address requires a state code")
	}
	if zip.IsZero() {
		return PostalAddress{}, invalidf("address requires a zip code")
	}
	return PostalAddress{
		Line1: line1,
		Line2: line2,
		Line3: line3,
		Line4: line4,
		State: state,
		Zip:   zip,
	}, nil
}

// PostalContactInfo pairs a postal address with its validity state.
// As with EmailContactInfo, the fields change together: replacing the
// address resets the flag, via WithAddress.
type PostalContactInfo struct {
	// Address is the physical address.
	Address PostalAddress

	// AddressValid records whether the address was checked for deliverability.
	AddressValid bool
}

// WithAddress returns a copy carrying the new address with AddressValid
// reset to false.
func (p PostalContactInfo) WithAddress(address PostalAddress) PostalContactInfo {
	return PostalContactInfo{Address: address, AddressValid: false}
}

// MarkValid returns a copy with the validity flag set.
func (p PostalContactInfo) MarkValid() PostalContactInfo {
	p.AddressValid = true
	return p
}

// PhoneContactInfo carries a validated phone number.
type PhoneContactInfo struct {
	// Number is the validated phone number.
	Number PhoneNumber
}

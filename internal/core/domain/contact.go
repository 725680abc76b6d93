package domain

import "time"

// Contact is the aggregate root: a person plus at least one way to reach
// them. The "at least one" rule is structural: the primary method is an
// unexported field that NewContact refuses to leave nil, and no operation
// can remove it without supplying a replacement. A zero-method Contact
// cannot be assembled outside this package.
//
// Contact is a value type. Every operation returns a new Contact; nothing
// mutates shared state.
type Contact struct {
	// ID is the unique identifier for the contact.
	ID string

	// Name is the contact's personal name.
	Name PersonalName

	// CreatedAt is when the contact was created.
	CreatedAt time.Time

	// UpdatedAt is when the contact was last updated.
	UpdatedAt time.Time

	primary     ContactMethod
	secondaries []ContactMethod
}

// NewContact builds a Contact. The primary method is required; secondaries
// are optional and kept in order. A nil primary or nil secondary is rejected
// with ErrNoContactMethod / ErrInvalidInput.
func NewContact(id string, name PersonalName, primary ContactMethod, secondaries ...ContactMethod) (Contact, error) {
	if primary == nil {
		return Contact{}, ErrNoContactMethod
	}
	for _, m := range secondaries {
		if m == nil {
			return Contact{}, invalidf("secondary contact method must not be nil")
		}
	}
	c := Contact{
		ID:      id,
		Name:    name,
		primary: primary,
	}
	if len(secondaries) > 0 {
		c.secondaries = append([]ContactMethod(nil), secondaries...)
	}
	return c, nil
}

// Primary returns the primary contact method. Never nil for a constructed
// Contact.
func (c Contact) Primary() ContactMethod {
	return c.primary
}

// Secondaries returns a copy of the secondary methods in order.
func (c Contact) Secondaries() []ContactMethod {
	if len(c.secondaries) == 0 {
		return nil
	}
	return append([]ContactMethod(nil), c.secondaries...)
}

// Methods returns all contact methods, primary first.
func (c Contact) Methods() []ContactMethod {
	methods := make([]ContactMethod, 0, 1+len(c.secondaries))
	methods = append(methods, c.primary)
	methods = append(methods, c.secondaries...)
	return methods
}

// SetPrimary returns a Contact whose primary is the supplied method; the old
// primary moves to the front of the secondaries. Supplying the replacement
// up front is what keeps "at least one method" true by construction.
func (c Contact) SetPrimary(m ContactMethod) (Contact, error) {
	if m == nil {
		return Contact{}, ErrNoContactMethod
	}
	out := c
	out.secondaries = append([]ContactMethod{c.primary}, c.secondaries...)
	out.primary = m
	return out, nil
}

// PromoteSecondary returns a Contact whose primary is the secondary at index
// i; the old primary is appended to the secondaries. An out-of-range index
// is ErrInvalidInput.
func (c Contact) PromoteSecondary(i int) (Contact, error) {
	if i < 0 || i >= len(c.secondaries) {
		return Contact{}, invalidf("no secondary contact method at index %d", i)
	}
	out := c
	out.primary = c.secondaries[i]
	rest := make([]ContactMethod, 0, len(c.secondaries))
	rest = append(rest, c.secondaries[:i]...)
	rest = append(rest, c.secondaries[i+1:]...)
	out.secondaries = append(rest, c.primary)
	return out, nil
}

// WithEmail returns a Contact carrying the given email payload. If an email
// method already exists (primary or secondary) its payload is replaced in
// place; otherwise a new email method is appended as a secondary. All other
// methods, including their verification flags, are untouched.
func (c Contact) WithEmail(info EmailContactInfo) Contact {
	return c.replaceOrAppend(MethodKindEmail, EmailMethod{Info: info})
}

// WithPostal returns a Contact carrying the given postal payload, with the
// same replace-or-append semantics as WithEmail. On an email-only contact
// this yields an email-and-postal contact; on an email-and-postal contact
// the old postal payload is discarded.
func (c Contact) WithPostal(info PostalContactInfo) Contact {
	return c.replaceOrAppend(MethodKindPostal, PostalMethod{Info: info})
}

// WithHomePhone returns a Contact carrying the given home phone payload,
// with replace-or-append semantics.
func (c Contact) WithHomePhone(info PhoneContactInfo) Contact {
	return c.replaceOrAppend(MethodKindHomePhone, HomePhoneMethod{Info: info})
}

// WithWorkPhone returns a Contact carrying the given work phone payload,
// with replace-or-append semantics.
func (c Contact) WithWorkPhone(info PhoneContactInfo) Contact {
	return c.replaceOrAppend(MethodKindWorkPhone, WorkPhoneMethod{Info: info})
}

// EmailInfo returns the payload of the first email method, if any.
func (c Contact) EmailInfo() (EmailContactInfo, bool) {
	for _, m := range c.Methods() {
		if em, ok := m.(EmailMethod); ok {
			return em.Info, true
		}
	}
	return EmailContactInfo{}, false
}

// PostalInfo returns the payload of the first postal method, if any.
func (c Contact) PostalInfo() (PostalContactInfo, bool) {
	for _, m := range c.Methods() {
		if pm, ok := m.(PostalMethod); ok {
			return pm.Info, true
		}
	}
	return PostalContactInfo{}, false
}

// replaceOrAppend swaps the first method of the given kind for replacement,
// preserving its position, or appends replacement as a secondary when no
// method of that kind exists.
func (c Contact) replaceOrAppend(kind MethodKind, replacement ContactMethod) Contact {
	out := c
	if KindOf(c.primary) == kind {
		out.primary = replacement
		return out
	}
	for i, m := range c.secondaries {
		if KindOf(m) == kind {
			out.secondaries = append([]ContactMethod(nil), c.secondaries...)
			out.secondaries[i] = replacement
			return out
		}
	}
	out.secondaries = append(append([]ContactMethod(nil), c.secondaries...), replacement)
	return out
}

package domain

import "fmt"

// ContactMethod is one reachable way to contact someone: exactly one of
// email, postal address, home phone or work phone. The variant set is
// closed: the unexported marker method keeps implementations inside this
// package, so every value is one of the four types below.
//
// Consumers dispatch over the set either through MethodVisitor (statically
// exhaustive: adding a variant adds a Visit method, which breaks every
// visitor implementation at compile time) or through MatchMethod (a
// value-returning fold that panics loudly on a missing case).
type ContactMethod interface {
	isContactMethod()

	// Accept dispatches to the visitor method for this variant.
	Accept(v MethodVisitor)
}

// MethodVisitor handles every ContactMethod variant. Implementations must
// cover all four; a new variant cannot be added without extending this
// interface, which every existing implementation then fails to satisfy
// until updated.
type MethodVisitor interface {
	VisitEmail(info EmailContactInfo)
	VisitPostal(info PostalContactInfo)
	VisitHomePhone(info PhoneContactInfo)
	VisitWorkPhone(info PhoneContactInfo)
}

// EmailMethod is the email variant.
type EmailMethod struct {
	Info EmailContactInfo
}

// PostalMethod is the postal address variant.
type PostalMethod struct {
	Info PostalContactInfo
}

// HomePhoneMethod is the home phone variant.
type HomePhoneMethod struct {
	Info PhoneContactInfo
}

// WorkPhoneMethod is the work phone variant.
type WorkPhoneMethod struct {
	Info PhoneContactInfo
}

func (EmailMethod) isContactMethod()     {}
func (PostalMethod) isContactMethod()    {}
func (HomePhoneMethod) isContactMethod() {}
func (WorkPhoneMethod) isContactMethod() {}

// Accept dispatches to VisitEmail.
func (m EmailMethod) Accept(v MethodVisitor) { v.VisitEmail(m.Info) }

// Accept dispatches to VisitPostal.
func (m PostalMethod) Accept(v MethodVisitor) { v.VisitPostal(m.Info) }

// Accept dispatches to VisitHomePhone.
func (m HomePhoneMethod) Accept(v MethodVisitor) { v.VisitHomePhone(m.Info) }

// Accept dispatches to VisitWorkPhone.
func (m WorkPhoneMethod) Accept(v MethodVisitor) { v.VisitWorkPhone(m.Info) }

// MethodCases holds one handler per ContactMethod variant for MatchMethod.
// All four must be set.
type MethodCases[R any] struct {
	Email     func(EmailContactInfo) R
	Postal    func(PostalContactInfo) R
	HomePhone func(PhoneContactInfo) R
	WorkPhone func(PhoneContactInfo) R
}

// MatchMethod folds a ContactMethod into a value by applying the handler for
// its variant. A nil handler for the matched variant panics with the variant
// name: an unhandled case is a programming error and must never degrade to a
// silent no-op. For dispatch checked at compile time, implement
// MethodVisitor instead.
func MatchMethod[R any](m ContactMethod, cases MethodCases[R]) R {
	switch v := m.(type) {
	case EmailMethod:
		if cases.Email == nil {
			panic("domain: MatchMethod missing Email case")
		}
		return cases.Email(v.Info)
	case PostalMethod:
		if cases.Postal == nil {
			panic("domain: MatchMethod missing Postal case")
		}
		return cases.Postal(v.Info)
	case HomePhoneMethod:
		if cases.HomePhone == nil {
			panic("domain: MatchMethod missing HomePhone case")
		}
		return cases.HomePhone(v.Info)
	case WorkPhoneMethod:
		if cases.WorkPhone == nil {
			panic("domain: MatchMethod missing WorkPhone case")
		}
		return cases.WorkPhone(v.Info)
	default:
		panic(fmt.Sprintf("domain: unhandled contact method variant %T", m))
	}
}

// MethodKind identifies a ContactMethod variant by name, for storage and
// display. Kinds are stable identifiers; renaming one is a data migration.
type MethodKind string

// Available method kinds.
const (
	// MethodKindEmail is the email variant.
	MethodKindEmail MethodKind = "email"
	// MethodKindPostal is the postal address variant.
	MethodKindPostal MethodKind = "postal"
	// MethodKindHomePhone is the home phone variant.
	MethodKindHomePhone MethodKind = "home_phone"
	// MethodKindWorkPhone is the work phone variant.
	MethodKindWorkPhone MethodKind = "work_phone"
)

// IsValid returns true if the kind is recognised.
func (k MethodKind) IsValid() bool {
	switch k {
	case MethodKindEmail, MethodKindPostal, MethodKindHomePhone, MethodKindWorkPhone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k MethodKind) String() string {
	return string(k)
}

// KindOf reports the variant of a ContactMethod.
func KindOf(m ContactMethod) MethodKind {
	return MatchMethod(m, MethodCases[MethodKind]{
		Email:     func(EmailContactInfo) MethodKind { return MethodKindEmail },
		Postal:    func(PostalContactInfo) MethodKind { return MethodKindPostal },
		HomePhone: func(PhoneContactInfo) MethodKind { return MethodKindHomePhone },
		WorkPhone: func(PhoneContactInfo) MethodKind { return MethodKindWorkPhone },
	})
}

// DescribeMethod renders a ContactMethod for display. This is the reporting
// consumer: because it folds over the full variant set, a new variant cannot
// ship without this function (and every other consumer) handling it.
func DescribeMethod(m ContactMethod) string {
	return MatchMethod(m, MethodCases[string]{
		Email: func(info EmailContactInfo) string {
			if info.Verified {
				return fmt.Sprintf("Email: %s (verified)", info.Email)
			}
			return fmt.Sprintf("Email: %s (unverified)", info.Email)
		},
		Postal: func(info PostalContactInfo) string {
			addr := info.Address
			s := "Postal: " + addr.Line1
			for _, line := range []string{addr.Line2, addr.Line3, addr.Line4} {
				if line != "" {
					s += ", " + line
				}
			}
			s += fmt.Sprintf(", %s %s", addr.State, addr.Zip)
			if info.AddressValid {
				s += " (validated)"
			}
			return s
		},
		HomePhone: func(info PhoneContactInfo) string {
			return fmt.Sprintf("Home phone: %s", info.Number)
		},
		WorkPhone: func(info PhoneContactInfo) string {
			return fmt.Sprintf("Work phone: %s", info.Number)
		},
	})
}

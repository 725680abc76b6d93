// Package domain defines the core business entities for rolo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - EmailAddress, ZipCode, StateCode, PhoneNumber: validated string values
//   - PersonalName: a person's name with an optional middle initial
//   - ContactMethod: a closed variant set of ways to reach someone
//   - Contact: the aggregate holding a name plus at least one contact method
//
// # Validated values
//
// Each constrained value is an opaque type that can only be produced by its
// smart constructor. Once constructed, the wrapped string is guaranteed to
// satisfy the type's predicate for the lifetime of the value; unwrapping via
// String() is total. Validation failure is returned as data, never panicked
// or thrown.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

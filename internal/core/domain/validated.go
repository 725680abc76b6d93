package domain

import (
	"fmt"
)

// invalidf builds a validation failure carrying a human-readable reason.
// All smart constructor failures wrap ErrInvalidInput.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Construct runs a smart constructor over raw input and hands the outcome to
// exactly one of the two handlers: onValid with the constructed value, or
// onInvalid with the reason validation failed.
//
// This is the most general construction style: the result style (value plus
// error) and the option style (value plus ok) are both recoverable from it,
// as are caller-specific policies such as logging and defaulting. The
// constructor itself never decides how a failure is surfaced.
func Construct[T, R any](
	raw string,
	ctor func(string) (T, error),
	onValid func(T) R,
	onInvalid func(error) R,
) R {
	v, err := ctor(raw)
	if err != nil {
		return onInvalid(err)
	}
	return onValid(v)
}

// option adapts a result-style constructor outcome to the option style.
// The failure reason is discarded.
func option[T any](v T, err error) (T, bool) {
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
